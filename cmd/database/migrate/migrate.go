package migration

import (
	"Balance-Eat/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"goal", &entities.Goal{}},
		{"food", &entities.Food{}},
		{"inventory", &entities.UserFoodInventory{}},
		{"meal", &entities.Meal{}},
		{"meal food", &entities.MealFood{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Errorf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	log.Info("Database migration complete")
	return nil
}
