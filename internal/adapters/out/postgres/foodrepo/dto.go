// Package foodrepo persists catalog entries of the catalog service in the "foods" table.
package foodrepo

import (
	"time"

	"ordering/internal/core/domain/model/food"
	"ordering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// FoodDTO represents the database structure of a catalog entry.
// ID is a serial column assigned by Postgres.
type FoodDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category  string          `gorm:"type:varchar(100);not null"`
	Available bool            `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for catalog entries.
func (FoodDTO) TableName() string {
	return "foods"
}

func fromDomain(f *food.Food) FoodDTO {
	return FoodDTO{
		ID:        f.ID(),
		Name:      f.Name(),
		Price:     f.Price().Decimal(),
		Category:  f.Category(),
		Available: f.Available(),
	}
}

func toDomain(dto FoodDTO) (*food.Food, error) {
	return food.RestoreFood(dto.ID, dto.Name, kernel.NewMoney(dto.Price), dto.Category, dto.Available)
}
