package food

import (
	"Balance-Eat/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id uint) (*entities.Food, error)
		GetFoodsByIDs(ctx context.Context, ids []uint) (map[uint]*entities.Food, error)
		SearchFoodsByName(ctx context.Context, name string) ([]*entities.Food, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id uint) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("food_id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// GetFoodsByIDs returns the foods that exist, keyed by id. Missing ids are
// simply absent from the map.
func (r *foodRepository) GetFoodsByIDs(ctx context.Context, ids []uint) (map[uint]*entities.Food, error) {
	foods := make(map[uint]*entities.Food, len(ids))
	if len(ids) == 0 {
		return foods, nil
	}

	var rows []*entities.Food
	if err := r.db.WithContext(ctx).Where("food_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, f := range rows {
		foods[f.FoodID] = f
	}
	return foods, nil
}

func (r *foodRepository) SearchFoodsByName(ctx context.Context, name string) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Select("food_id", "name").
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("food_id ASC").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}
