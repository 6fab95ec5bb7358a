package entities

// Food is a catalog entry. Macros are per unit and may be absent.
type Food struct {
	FoodID          uint    `gorm:"primaryKey" json:"food_id"`
	Name            string  `gorm:"size:255;not null;index" json:"name"`
	Unit            int     `json:"unit"`
	CaloriesPerUnit *int    `json:"calories_per_unit"`
	ProteinPerUnit  *int    `json:"protein_per_unit"`
	CarbsPerUnit    *int    `json:"carbs_per_unit"`
	FatPerUnit      *int    `json:"fat_per_unit"`
	Allergens       *string `gorm:"size:255" json:"allergens,omitempty"`
	Timestamp
}
