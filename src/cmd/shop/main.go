package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	checkoutapp "github.com/jackyeh168/ecommerce/src/internal/application/checkout"
	customerapp "github.com/jackyeh168/ecommerce/src/internal/application/customer"
	productapp "github.com/jackyeh168/ecommerce/src/internal/application/product"
	"github.com/jackyeh168/ecommerce/src/internal/domain/checkout"
	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"github.com/jackyeh168/ecommerce/src/internal/domain/product"
	"github.com/jackyeh168/ecommerce/src/internal/infrastructure/event"
	"github.com/jackyeh168/ecommerce/src/internal/infrastructure/notification"
	"github.com/jackyeh168/ecommerce/src/internal/infrastructure/persistence"
	checkoutpersistence "github.com/jackyeh168/ecommerce/src/internal/infrastructure/persistence/checkout"
	customerpersistence "github.com/jackyeh168/ecommerce/src/internal/infrastructure/persistence/customer"
	productpersistence "github.com/jackyeh168/ecommerce/src/internal/infrastructure/persistence/product"
	"github.com/jackyeh168/ecommerce/src/internal/pkg/config"
	"github.com/jackyeh168/ecommerce/src/internal/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.ServiceName, cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("shop_failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	db, err := persistence.Open(cfg.DatabaseDSN, gormlogger.Warn)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.Close(db) }()

	if err := migrate(db); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := event.NewMetrics(registry)
	if err != nil {
		return err
	}

	dispatcher := event.NewDispatcher(event.WithLogger(logger), event.WithMetrics(metrics))
	mailer := notification.NewLogMailer(logger)

	if err := customerapp.RegisterEventHandlers(dispatcher, logger); err != nil {
		return err
	}
	if err := productapp.RegisterEventHandlers(dispatcher, mailer, cfg.MailRecipient); err != nil {
		return err
	}
	if err := checkoutapp.RegisterEventHandlers(dispatcher, logger); err != nil {
		return err
	}

	if err := runDemo(db, dispatcher, logger); err != nil {
		return err
	}

	if !cfg.MetricsEnabled() {
		return nil
	}
	return serveMetrics(cfg.MetricsAddr, registry, logger)
}

func migrate(db *gorm.DB) error {
	for _, m := range []func(*gorm.DB) error{
		customerpersistence.Migrate,
		productpersistence.Migrate,
		checkoutpersistence.Migrate,
	} {
		if err := m(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

const demoCustomerID = "123"

var demoProducts = []productapp.CreateProductCommand{
	{ProductID: "1", Name: "item 1", Price: "10"},
	{ProductID: "2", Name: "item 2", Price: "30"},
}

// runDemo 建立客戶 Jorge、設定地址並啟用，建立兩個商品後下單
//
// 客戶與商品已存在時沿用既有資料，因此檔案資料庫可以重複執行。
func runDemo(db *gorm.DB, dispatcher *event.Dispatcher, logger *zap.Logger) error {
	txManager := persistence.NewGORMTransactionManager(db)
	customerRepo := customerpersistence.NewCustomerRepository(db)
	productRepo := productpersistence.NewProductRepository(db)
	orderRepo := checkoutpersistence.NewOrderRepository(db)
	orderService := checkout.NewOrderService()

	if err := ensureCustomer(customerRepo, customerapp.NewCreateCustomerUseCase(customerRepo, txManager, dispatcher)); err != nil {
		return err
	}

	if _, err := customerapp.NewChangeAddressUseCase(customerRepo, txManager, dispatcher).
		Execute(customerapp.ChangeAddressCommand{
			CustomerID: demoCustomerID,
			Street:     "Rio Vermelho",
			Number:     1,
			Zip:        "1111-111",
			City:       "Bahia",
		}); err != nil {
		return err
	}

	if err := customerapp.NewActivateCustomerUseCase(customerRepo, txManager).
		Execute(customerapp.ActivateCustomerCommand{CustomerID: demoCustomerID, Active: true}); err != nil {
		return err
	}

	if err := ensureProducts(productRepo, productapp.NewCreateProductUseCase(productRepo, txManager, dispatcher)); err != nil {
		return err
	}

	placed, err := checkoutapp.NewPlaceOrderUseCase(customerRepo, productRepo, orderRepo, orderService, txManager, dispatcher).
		Execute(checkoutapp.PlaceOrderCommand{
			CustomerID: demoCustomerID,
			Lines: []checkoutapp.PlaceOrderLine{
				{ProductID: "1", Quantity: 1},
				{ProductID: "2", Quantity: 1},
			},
		})
	if err != nil {
		return err
	}

	orders, err := checkoutapp.NewListOrdersUseCase(orderRepo, orderService).Execute()
	if err != nil {
		return err
	}

	c, err := customerapp.NewGetCustomerUseCase(customerRepo).
		Execute(customerapp.GetCustomerQuery{CustomerID: demoCustomerID})
	if err != nil {
		return err
	}

	logger.Info("demo_completed",
		zap.String("order_id", placed.OrderID),
		zap.String("order_total", placed.Total),
		zap.String("grand_total", orders.GrandTotal),
		zap.Int("order_count", len(orders.Orders)),
		zap.String("customer", c.Name),
		zap.String("address", c.Address),
		zap.Bool("active", c.Active),
		zap.Int("reward_points", c.RewardPoints),
	)
	return nil
}

func ensureCustomer(repo customer.CustomerRepository, create customerapp.CreateCustomerUseCase) error {
	_, err := repo.Find(nil, demoCustomerID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, customer.ErrCustomerNotFound) {
		return err
	}
	_, err = create.Execute(customerapp.CreateCustomerCommand{CustomerID: demoCustomerID, Name: "Jorge"})
	return err
}

func ensureProducts(repo product.ProductRepository, create *productapp.CreateProductUseCase) error {
	for _, cmd := range demoProducts {
		_, err := repo.Find(nil, cmd.ProductID)
		if err == nil {
			continue
		}
		if !errors.Is(err, product.ErrProductNotFound) {
			return err
		}
		if _, err := create.Execute(cmd); err != nil {
			return err
		}
	}
	return nil
}

func serveMetrics(addr string, registry *prometheus.Registry, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics_server_start", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics server shutdown: %w", err)
	}
	logger.Info("metrics_server_stopped")
	return nil
}
