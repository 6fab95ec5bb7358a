package user

import (
	"Balance-Eat/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUserWithGoal(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		IsEmailTaken(ctx context.Context, email string) (bool, error)
		UpdateUserWithGoal(ctx context.Context, user *entities.User, goal *entities.Goal) error
		UpdateAllergies(ctx context.Context, userID uint, allergies string) error
		GetLatestGoal(ctx context.Context, userID uint) (*entities.Goal, error)
		DeleteUser(ctx context.Context, userID uint) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUserWithGoal inserts the user and its goal in one transaction.
func (r *userRepository) CreateUserWithGoal(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Preload("Goal").Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateUserWithGoal saves the user and, when goal is non-nil, the goal in one
// transaction.
func (r *userRepository) UpdateUserWithGoal(ctx context.Context, user *entities.User, goal *entities.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Goal").Save(user).Error; err != nil {
			return err
		}
		if goal == nil {
			return nil
		}
		return tx.Save(goal).Error
	})
}

func (r *userRepository) UpdateAllergies(ctx context.Context, userID uint, allergies string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("user_id = ?", userID).
		Update("allergies", allergies).Error
}

func (r *userRepository) GetLatestGoal(ctx context.Context, userID uint) (*entities.Goal, error) {
	var goal entities.Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteUser removes the user and every row it owns.
func (r *userRepository) DeleteUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mealIDs := tx.Model(&entities.Meal{}).Select("meal_id").Where("user_id = ?", userID)
		if err := tx.Where("meal_id IN (?)", mealIDs).Delete(&entities.MealFood{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&entities.Meal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&entities.UserFoodInventory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&entities.Goal{}).Error; err != nil {
			return err
		}

		res := tx.Where("user_id = ?", userID).Delete(&entities.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
