package customer

import (
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
)

// ===========================
// Customer Aggregate Root
// ===========================

// Customer 客戶聚合根
//
// 不變量（Invariants）：
// 1. 客戶必須有 ID 與名稱
// 2. 啟用（active）的客戶必須有地址
// 3. 獎勵積分 >= 0，只能累加
//
// 領域事件：
// - NewCustomer → CustomerCreated
// - ChangeAddress → CustomerAddressChanged
//
// 事件只記錄在聚合內，由應用層在持久化之後透過 PullEvents 取出並分派；
// 聚合本身不依賴分派器。
type Customer struct {
	id           string
	name         string
	address      Address
	active       bool
	rewardPoints int

	events []shared.Event
}

// NewCustomer 創建新客戶（Checked Constructor）
//
// 錯誤：
// - id == "" → ErrCustomerIDRequired
// - name == "" → ErrCustomerNameRequired
func NewCustomer(id, name string) (*Customer, error) {
	c := &Customer{id: id, name: name}
	if err := c.validate(); err != nil {
		return nil, err
	}

	c.addEvent(newCustomerCreatedEvent(c))
	return c, nil
}

// ReconstructCustomer 重建客戶聚合（用於從資料庫載入，不發布事件）
func ReconstructCustomer(
	id string,
	name string,
	address Address,
	active bool,
	rewardPoints int,
) (*Customer, error) {
	c := &Customer{
		id:           id,
		name:         name,
		address:      address,
		active:       active,
		rewardPoints: rewardPoints,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if rewardPoints < 0 {
		return nil, ErrInvalidRewardPoints.WithContext("customer_id", id, "reward_points", rewardPoints)
	}
	if active && address.IsZero() {
		return nil, ErrAddressRequired.WithContext("customer_id", id, "reason", "active customer without address")
	}
	return c, nil
}

func (c *Customer) validate() error {
	if c.id == "" {
		return ErrCustomerIDRequired
	}
	if c.name == "" {
		return ErrCustomerNameRequired.WithContext("customer_id", c.id)
	}
	return nil
}

// ===========================
// Behavior Methods
// ===========================

// ChangeName 修改名稱
func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return ErrCustomerNameRequired.WithContext("customer_id", c.id)
	}
	c.name = name
	return nil
}

// ChangeAddress 修改地址並記錄 CustomerAddressChanged 事件
func (c *Customer) ChangeAddress(address Address) error {
	if address.IsZero() {
		return ErrInvalidAddress.WithContext("customer_id", c.id, "reason", "address is empty")
	}
	c.address = address
	c.addEvent(newCustomerAddressChangedEvent(c))
	return nil
}

// Activate 啟用客戶
//
// 業務規則：必須先設定地址
func (c *Customer) Activate() error {
	if c.address.IsZero() {
		return ErrAddressRequired.WithContext("customer_id", c.id)
	}
	c.active = true
	return nil
}

// Deactivate 停用客戶
func (c *Customer) Deactivate() {
	c.active = false
}

// AddRewardPoints 累加獎勵積分
func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return ErrInvalidRewardPoints.WithContext("customer_id", c.id, "points", points)
	}
	c.rewardPoints += points
	return nil
}

// ===========================
// Getters
// ===========================

// ID 返回客戶 ID
func (c *Customer) ID() string { return c.id }

// Name 返回客戶名稱
func (c *Customer) Name() string { return c.name }

// Address 返回地址（零值表示未設定）
func (c *Customer) Address() Address { return c.address }

// IsActive 是否已啟用
func (c *Customer) IsActive() bool { return c.active }

// RewardPoints 返回獎勵積分
func (c *Customer) RewardPoints() int { return c.rewardPoints }

// ===========================
// 領域事件
// ===========================

func (c *Customer) addEvent(e shared.Event) {
	c.events = append(c.events, e)
}

// PullEvents 取出並清空待發布的領域事件
func (c *Customer) PullEvents() []shared.Event {
	events := c.events
	c.events = nil
	return events
}
