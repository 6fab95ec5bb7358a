package entities

import (
	"time"
)

const (
	MealTypeMorning = "morning"
	MealTypeLunch   = "lunch"
	MealTypeDinner  = "dinner"
)

type Meal struct {
	MealID   uint      `gorm:"primaryKey" json:"meal_id"`
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	EatenAt  time.Time `gorm:"index;not null" json:"datetime"` // UTC, assigned by the server
	MealType string    `gorm:"size:20;not null" json:"meal_type"`

	MealFoods []*MealFood `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"meal_foods,omitempty"`
	Timestamp
}

// MealFood is one line of a meal. Macros are totals for the line, copied
// from the catalog when the line is written.
type MealFood struct {
	MealFoodID uint `gorm:"primaryKey" json:"meal_food_id"`
	MealID     uint `gorm:"index;not null" json:"meal_id"`
	FoodID     uint `gorm:"not null" json:"food_id"`
	Quantity   int  `gorm:"not null" json:"quantity"`
	Calories   *int `json:"calories"`
	Protein    *int `json:"protein"`
	Carbs      *int `json:"carbs"`
	Fat        *int `json:"fat"`

	Food *Food `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	Timestamp
}
