package foodrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/food"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFoodRepository implements ports.FoodRepository using GORM.
type GormFoodRepository struct {
	db *gorm.DB
}

// NewGormFoodRepository creates a new GORM food repository.
func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

// Get retrieves a catalog entry by ID.
func (r *GormFoodRepository) Get(ctx context.Context, id int64) (*food.Food, error) {
	var dto FoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the existing entries among ids, ordered by id. Unknown ids are skipped.
func (r *GormFoodRepository) GetByIDs(ctx context.Context, ids []int64) ([]*food.Food, error) {
	if len(ids) == 0 {
		return []*food.Food{}, nil
	}

	var dtos []FoodDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	foods := make([]*food.Food, 0, len(dtos))
	for _, dto := range dtos {
		f, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}

	return foods, nil
}

// Count returns the number of stored catalog entries.
func (r *GormFoodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&FoodDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AddMany inserts new entries in one statement and returns them with their assigned ids.
func (r *GormFoodRepository) AddMany(ctx context.Context, foods []*food.Food) ([]*food.Food, error) {
	if len(foods) == 0 {
		return []*food.Food{}, nil
	}

	dtos := make([]FoodDTO, 0, len(foods))
	for _, f := range foods {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		dtos = append(dtos, fromDomain(f))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return nil, err
	}

	stored := make([]*food.Food, 0, len(dtos))
	for _, dto := range dtos {
		f, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stored = append(stored, f)
	}

	return stored, nil
}
