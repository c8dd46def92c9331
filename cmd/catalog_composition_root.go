package cmd

import (
	"context"
	"log/slog"

	"ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres/foodrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/food"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// CatalogCompositionRoot wires the catalog service.
type CatalogCompositionRoot struct {
	foodRepository ports.FoodRepository
	logger         *slog.Logger
}

func NewCatalogCompositionRoot(gormDB *gorm.DB, logger *slog.Logger) CatalogCompositionRoot {
	return CatalogCompositionRoot{
		foodRepository: foodrepo.NewGormFoodRepository(gormDB),
		logger:         logger,
	}
}

func (c *CatalogCompositionRoot) CreateGetFoodByIDQueryHandler() queries.GetFoodByIDQueryHandler {
	return queries.NewGetFoodByIDQueryHandler(c.foodRepository)
}

func (c *CatalogCompositionRoot) CreateGetFoodsByIDsQueryHandler() queries.GetFoodsByIDsQueryHandler {
	return queries.NewGetFoodsByIDsQueryHandler(c.foodRepository)
}

func (c *CatalogCompositionRoot) CreateCatalogServer() *http.CatalogServer {
	return http.NewCatalogServer(
		c.CreateGetFoodByIDQueryHandler(),
		c.CreateGetFoodsByIDsQueryHandler(),
		c.logger,
	)
}

// SeedCatalog stores the default menu when the catalog is empty.
// It returns the number of items stored.
func (c *CatalogCompositionRoot) SeedCatalog(ctx context.Context) (int, error) {
	count, err := c.foodRepository.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	menu, err := DefaultMenu()
	if err != nil {
		return 0, err
	}

	stored, err := c.foodRepository.AddMany(ctx, menu)
	if err != nil {
		return 0, err
	}
	return len(stored), nil
}

// DefaultMenu returns the items a fresh catalog starts with.
func DefaultMenu() ([]*food.Food, error) {
	entries := []struct {
		name     string
		price    string
		category string
	}{
		{"Pizza Margherita", "10.99", "Pizza"},
		{"Hamburger", "8.99", "Burger"},
		{"Caesar Salad", "7.99", "Salad"},
		{"Spaghetti Carbonara", "12.99", "Pasta"},
		{"Chicken Wings", "9.99", "Appetizer"},
	}

	menu := make([]*food.Food, 0, len(entries))
	for _, e := range entries {
		price, err := kernel.MoneyFromString(e.price)
		if err != nil {
			return nil, err
		}

		f, err := food.NewFood(e.name, price, e.category, true)
		if err != nil {
			return nil, err
		}
		menu = append(menu, f)
	}
	return menu, nil
}
