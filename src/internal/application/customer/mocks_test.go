package customer

import (
	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// ===========================
// Mocks
// ===========================

// MockCustomerRepository mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx shared.TransactionContext, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx shared.TransactionContext, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Find(ctx shared.TransactionContext, id string) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx shared.TransactionContext) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

// MockTransactionManager mock implementation of TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	// Directly execute the function with nil context (for unit tests)
	return fn(nil)
}

// MockEventNotifier mock implementation of EventNotifier
type MockEventNotifier struct {
	mock.Mock
}

func (m *MockEventNotifier) Notify(event shared.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e shared.Event) bool {
		return e.EventType() == eventType
	})
}
