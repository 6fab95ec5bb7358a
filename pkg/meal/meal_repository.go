package meal

import (
	"Balance-Eat/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	MealQuery struct {
		From     *time.Time
		To       *time.Time
		MealType string
	}

	MealRepository interface {
		CreateMeal(ctx context.Context, meal *entities.Meal) error
		GetMealByID(ctx context.Context, userID, mealID uint) (*entities.Meal, error)
		UpdateMeal(ctx context.Context, mealID uint, mealType *string, lines []*entities.MealFood, replaceLines bool) error
		GetMeals(ctx context.Context, userID uint, query MealQuery) ([]*entities.Meal, error)
		SumCalories(ctx context.Context, userID uint) (int, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

// CreateMeal writes the meal and its lines in one transaction.
func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(meal).Error
	})
}

func (r *mealRepository) GetMealByID(ctx context.Context, userID, mealID uint) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).
		Where("meal_id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) UpdateMeal(ctx context.Context, mealID uint, mealType *string, lines []*entities.MealFood, replaceLines bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if mealType != nil {
			if err := tx.Model(&entities.Meal{}).
				Where("meal_id = ?", mealID).
				Update("meal_type", *mealType).Error; err != nil {
				return err
			}
		}
		if !replaceLines {
			return nil
		}

		if err := tx.Where("meal_id = ?", mealID).Delete(&entities.MealFood{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		for _, line := range lines {
			line.MealID = mealID
		}
		return tx.Create(&lines).Error
	})
}

func (r *mealRepository) GetMeals(ctx context.Context, userID uint, query MealQuery) ([]*entities.Meal, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if query.From != nil {
		q = q.Where("eaten_at >= ?", *query.From)
	}
	if query.To != nil {
		q = q.Where("eaten_at < ?", *query.To)
	}
	if query.MealType != "" {
		q = q.Where("meal_type = ?", query.MealType)
	}

	var meals []*entities.Meal
	if err := q.
		Preload("MealFoods", func(db *gorm.DB) *gorm.DB {
			return db.Order("meal_food_id ASC")
		}).
		Preload("MealFoods.Food").
		Order("eaten_at DESC").
		Order("meal_id DESC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// SumCalories totals the calories of every line the user has ever eaten.
func (r *mealRepository) SumCalories(ctx context.Context, userID uint) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&entities.MealFood{}).
		Joins("JOIN meals ON meals.meal_id = meal_foods.meal_id").
		Where("meals.user_id = ?", userID).
		Select("COALESCE(SUM(meal_foods.calories), 0)").
		Row().
		Scan(&total)
	return total, err
}
