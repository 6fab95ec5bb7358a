package domain

import (
	"errors"
)

var (
	MessageSuccessCreateMeal      = "한 끼 저장 완료"
	MessageSuccessEditMeal        = "식사 정보가 수정되었습니다."
	MessageSuccessGetMeals        = "meals retrieved successfully"
	MessageSuccessGetDailySummary = "daily summary retrieved successfully"

	MessageFailedCreateMeal      = "failed to create meal"
	MessageFailedEditMeal        = "failed to edit meal"
	MessageFailedGetMeals        = "failed to get meals"
	MessageFailedGetDailySummary = "failed to get daily summary"

	ErrMealNotFound = errors.New("해당 식사가 존재하지 않습니다.")
)

type (
	MealItemRequest struct {
		FoodID   uint `json:"food_id" validate:"required"`
		Quantity int  `json:"quantity" validate:"required,min=1"`
	}

	CreateMealRequest struct {
		MealType string            `json:"meal_type" validate:"required,oneof=morning lunch dinner"`
		Items    []MealItemRequest `json:"items" validate:"required,dive"`
	}

	// EditMealRequest replaces the whole line list when Items is non-nil.
	EditMealRequest struct {
		MealID   uint              `json:"meal_id" validate:"required"`
		MealType *string           `json:"meal_type" validate:"omitempty,oneof=morning lunch dinner"`
		Items    []MealItemRequest `json:"items" validate:"omitempty,dive"`
	}

	MealFilter struct {
		Date     string `query:"date"`
		MealType string `query:"meal_type" validate:"omitempty,oneof=morning lunch dinner"`
	}

	MealFoodResponse struct {
		FoodID   uint   `json:"food_id"`
		FoodName string `json:"food_name"`
		Quantity int    `json:"quantity"`
		Calories *int   `json:"calories"`
		Protein  *int   `json:"protein"`
		Carbs    *int   `json:"carbs"`
		Fat      *int   `json:"fat"`
	}

	MealResponse struct {
		MealID   uint               `json:"meal_id"`
		DateTime string             `json:"datetime"`
		MealType string             `json:"meal_type"`
		Total    MacroTotal         `json:"total"`
		Foods    []MealFoodResponse `json:"foods"`
	}

	DailySummaryResponse struct {
		Date      string     `json:"date"`
		MealCount int        `json:"meal_count"`
		Total     MacroTotal `json:"total"`
	}
)
