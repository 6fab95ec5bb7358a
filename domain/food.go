package domain

import (
	"errors"
)

var (
	MessageSuccessRegisterFood = "음식이 등록되었습니다"
	MessageSuccessSearchFoods  = "foods retrieved successfully"
	MessageSuccessGetFood      = "food retrieved successfully"

	MessageFailedRegisterFood = "failed to register food"
	MessageFailedSearchFoods  = "failed to search foods"
	MessageFailedGetFood      = "failed to get food"

	ErrFoodNotFound = errors.New("해당 음식이 존재하지 않습니다.")
)

type (
	RegisterFoodRequest struct {
		Name            string  `json:"name" validate:"required,max=255"`
		Unit            int     `json:"unit" validate:"min=0"`
		CaloriesPerUnit *int    `json:"calories_per_unit" validate:"required,min=0"`
		ProteinPerUnit  *int    `json:"protein_per_unit" validate:"required,min=0"`
		CarbsPerUnit    *int    `json:"carbs_per_unit" validate:"required,min=0"`
		FatPerUnit      *int    `json:"fat_per_unit" validate:"required,min=0"`
		Allergens       *string `json:"allergens"`
	}

	RegisterFoodResponse struct {
		Message string `json:"message"`
		FoodID  uint   `json:"food_id"`
	}

	SearchFoodRequest struct {
		Name string `query:"name" validate:"required"`
	}

	FoodSearchResult struct {
		FoodID uint   `json:"food_id"`
		Name   string `json:"name"`
	}

	FoodResponse struct {
		FoodID          uint    `json:"food_id"`
		Name            string  `json:"name"`
		Unit            int     `json:"unit"`
		CaloriesPerUnit *int    `json:"calories_per_unit"`
		ProteinPerUnit  *int    `json:"protein_per_unit"`
		CarbsPerUnit    *int    `json:"carbs_per_unit"`
		FatPerUnit      *int    `json:"fat_per_unit"`
		Allergens       *string `json:"allergens,omitempty"`
	}
)
