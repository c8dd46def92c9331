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
	"ordering/internal/adapters/out/postgres/foodrepo"
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

	logger := cmd.NewLogger("catalog-service", configs.LogLevel)

	if err = run(configs, logger); err != nil {
		log.Fatalf("Catalog service failed: %v", err)
	}
	logger.Info("Catalog service stopped")
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

	if err = gormDB.AutoMigrate(&foodrepo.FoodDTO{}); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	app := cmd.NewCatalogCompositionRoot(gormDB, logger)

	if configs.CatalogSeed {
		seeded, seedErr := app.SeedCatalog(ctx)
		if seedErr != nil {
			return fmt.Errorf("failed to seed catalog: %w", seedErr)
		}
		if seeded > 0 {
			logger.Info("Catalog seeded", "items", seeded)
		}
	}

	appMetrics := metrics.New("catalog-service")
	e := orderhttp.NewEcho(logger, appMetrics)
	app.CreateCatalogServer().Register(e)

	return cmd.StartWebServer(ctx, e, configs.CatalogHTTPPort, configs.ShutdownTimeout, logger)
}
