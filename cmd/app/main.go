package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ordering/cmd"
	orderhttp "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/catalog"
	orderkafka "ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/ports"
	"ordering/internal/metrics"

	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := cmd.NewLogger("order-service", configs.LogLevel)

	if err = run(configs, logger); err != nil {
		log.Fatalf("Order service failed: %v", err)
	}
	logger.Info("Order service stopped")
}

func run(configs cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	defer sqlDB.Close()

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}); err != nil {
		return fmt.Errorf("failed to migrate order schema: %w", err)
	}

	appMetrics := metrics.New("order-service")

	catalogClient, err := catalog.NewClient(configs.CatalogServiceURL, configs.CatalogTimeout, appMetrics)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	var publisher ports.OrderEventPublisher = orderkafka.NoopPublisher{}
	if configs.KafkaHost != "" {
		writer, writerErr := orderkafka.NewWriter(configs.KafkaHost, configs.KafkaOrderChangedTopic)
		if writerErr != nil {
			return fmt.Errorf("failed to create kafka writer: %w", writerErr)
		}

		orderChangedPublisher, publisherErr := orderkafka.NewOrderChangedPublisher(writer)
		if publisherErr != nil {
			return fmt.Errorf("failed to create order changed publisher: %w", publisherErr)
		}
		defer func() {
			if closeErr := orderChangedPublisher.Close(); closeErr != nil {
				logger.Warn("Failed to close kafka writer", "error", closeErr)
			}
		}()
		publisher = orderChangedPublisher
	} else {
		logger.Info("KAFKA_HOST is not set, order change events are disabled")
	}

	app := cmd.NewCompositionRoot(configs, gormDB, catalogClient, publisher, appMetrics, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := orderhttp.NewEcho(logger, appMetrics)
	app.CreateOrdersServer().Register(e)

	return cmd.StartWebServer(ctx, e, configs.HTTPPort, configs.ShutdownTimeout, logger)
}
