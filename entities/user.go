package entities

import (
	"time"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
)

type User struct {
	UserID    uint    `gorm:"primaryKey" json:"user_id"`
	Email     string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	HashedPW  string  `gorm:"column:hashed_pw;size:100;not null" json:"-"`
	Name      string  `gorm:"size:100;not null" json:"name"`
	Gender    string  `gorm:"size:1;not null" json:"gender"` // M or F
	Height    int     `gorm:"not null" json:"height"`
	Weight    int     `gorm:"not null" json:"weight"`
	Age       int     `gorm:"not null" json:"age"`
	Allergies *string `gorm:"type:text" json:"allergies,omitempty"`

	Goal        *Goal                `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"goal,omitempty"`
	Inventories []*UserFoodInventory `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Meals       []*Meal              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

type Goal struct {
	GoalID uint      `gorm:"primaryKey" json:"goal_id"`
	UserID uint      `gorm:"index;not null" json:"user_id"`
	Weight int       `gorm:"not null" json:"weight"`
	Date   time.Time `gorm:"not null" json:"date"`
	Timestamp
}
