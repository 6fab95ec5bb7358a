package food

import (
	"Balance-Eat/domain"
	"Balance-Eat/entities"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	FoodService interface {
		RegisterFood(ctx context.Context, req domain.RegisterFoodRequest) (domain.RegisterFoodResponse, error)
		GetFood(ctx context.Context, id uint) (domain.FoodResponse, error)
		SearchFoods(ctx context.Context, name string) ([]domain.FoodSearchResult, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
	}
}

func (s *foodService) RegisterFood(ctx context.Context, req domain.RegisterFoodRequest) (domain.RegisterFoodResponse, error) {
	food := &entities.Food{
		Name:            strings.TrimSpace(req.Name),
		Unit:            req.Unit,
		CaloriesPerUnit: req.CaloriesPerUnit,
		ProteinPerUnit:  req.ProteinPerUnit,
		CarbsPerUnit:    req.CarbsPerUnit,
		FatPerUnit:      req.FatPerUnit,
		Allergens:       req.Allergens,
	}
	if err := s.foodRepository.CreateFood(ctx, food); err != nil {
		return domain.RegisterFoodResponse{}, err
	}

	return domain.RegisterFoodResponse{
		Message: domain.MessageSuccessRegisterFood,
		FoodID:  food.FoodID,
	}, nil
}

func (s *foodService) GetFood(ctx context.Context, id uint) (domain.FoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	return domain.FoodResponse{
		FoodID:          food.FoodID,
		Name:            food.Name,
		Unit:            food.Unit,
		CaloriesPerUnit: food.CaloriesPerUnit,
		ProteinPerUnit:  food.ProteinPerUnit,
		CarbsPerUnit:    food.CarbsPerUnit,
		FatPerUnit:      food.FatPerUnit,
		Allergens:       food.Allergens,
	}, nil
}

// SearchFoods matches name as a case-insensitive substring. The result is
// never nil so an empty match encodes as [].
func (s *foodService) SearchFoods(ctx context.Context, name string) ([]domain.FoodSearchResult, error) {
	foods, err := s.foodRepository.SearchFoodsByName(ctx, name)
	if err != nil {
		return nil, err
	}

	results := make([]domain.FoodSearchResult, 0, len(foods))
	for _, f := range foods {
		results = append(results, domain.FoodSearchResult{
			FoodID: f.FoodID,
			Name:   f.Name,
		})
	}
	return results, nil
}
