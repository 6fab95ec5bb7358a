package inventory

import (
	"Balance-Eat/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	InventoryRepository interface {
		AddQuantity(ctx context.Context, userID, foodID uint, quantity int) error
		GetInventoryByUserID(ctx context.Context, userID uint) ([]*entities.UserFoodInventory, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

// AddQuantity inserts the (user, food) row or increments its quantity in a
// single statement, so concurrent adds never create a second row.
func (r *inventoryRepository) AddQuantity(ctx context.Context, userID, foodID uint, quantity int) error {
	row := &entities.UserFoodInventory{
		UserID:   userID,
		FoodID:   foodID,
		Quantity: quantity,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "food_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("user_food_inventories.quantity + excluded.quantity"),
			"updated_at": gorm.Expr("excluded.updated_at"),
		}),
	}).Create(row).Error
}

func (r *inventoryRepository) GetInventoryByUserID(ctx context.Context, userID uint) ([]*entities.UserFoodInventory, error) {
	var rows []*entities.UserFoodInventory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("inventory_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
