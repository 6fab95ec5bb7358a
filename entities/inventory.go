package entities

// UserFoodInventory carries no foreign key to foods. Adding
// stock for an unknown food id is accepted.
type UserFoodInventory struct {
	InventoryID uint `gorm:"primaryKey" json:"inventory_id"`
	UserID      uint `gorm:"not null;uniqueIndex:idx_inventory_user_food" json:"user_id"`
	FoodID      uint `gorm:"not null;uniqueIndex:idx_inventory_user_food" json:"food_id"`
	Quantity    int  `gorm:"not null" json:"quantity"`
	Timestamp
}
