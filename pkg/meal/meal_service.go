package meal

import (
	"Balance-Eat/domain"
	"Balance-Eat/entities"
	"Balance-Eat/pkg/food"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type (
	MealService interface {
		CreateMeal(ctx context.Context, userID uint, req domain.CreateMealRequest) error
		EditMeal(ctx context.Context, userID uint, req domain.EditMealRequest) error
		GetMeals(ctx context.Context, userID uint, filter domain.MealFilter) ([]domain.MealResponse, error)
		GetDailySummary(ctx context.Context, userID uint, date string) (domain.DailySummaryResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
		foodRepository food.FoodRepository
		now            func() time.Time
	}
)

func NewMealService(mealRepository MealRepository, foodRepository food.FoodRepository) MealService {
	return &mealService{
		mealRepository: mealRepository,
		foodRepository: foodRepository,
		now:            time.Now,
	}
}

// ParseDay returns the UTC bounds [start, end) of a YYYY-MM-DD date.
func ParseDay(date string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(domain.DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidDate
	}
	return start, start.AddDate(0, 0, 1), nil
}

// multiply treats a missing per-unit value as zero.
func multiply(perUnit *int, quantity int) *int {
	v := valueOf(perUnit) * quantity
	return &v
}

func valueOf(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// buildLines snapshots the catalog macros for each item. Any unknown food id
// fails the whole batch.
func (s *mealService) buildLines(ctx context.Context, items []domain.MealItemRequest) ([]*entities.MealFood, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.FoodID)
	}
	foods, err := s.foodRepository.GetFoodsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]*entities.MealFood, 0, len(items))
	for _, item := range items {
		f, ok := foods[item.FoodID]
		if !ok {
			return nil, fmt.Errorf("%w: food id %d", domain.ErrFoodNotFound, item.FoodID)
		}
		lines = append(lines, &entities.MealFood{
			FoodID:   item.FoodID,
			Quantity: item.Quantity,
			Calories: multiply(f.CaloriesPerUnit, item.Quantity),
			Protein:  multiply(f.ProteinPerUnit, item.Quantity),
			Carbs:    multiply(f.CarbsPerUnit, item.Quantity),
			Fat:      multiply(f.FatPerUnit, item.Quantity),
		})
	}
	return lines, nil
}

func (s *mealService) CreateMeal(ctx context.Context, userID uint, req domain.CreateMealRequest) error {
	lines, err := s.buildLines(ctx, req.Items)
	if err != nil {
		return err
	}

	meal := &entities.Meal{
		UserID:    userID,
		EatenAt:   s.now().UTC(),
		MealType:  req.MealType,
		MealFoods: lines,
	}
	return s.mealRepository.CreateMeal(ctx, meal)
}

func (s *mealService) EditMeal(ctx context.Context, userID uint, req domain.EditMealRequest) error {
	if _, err := s.mealRepository.GetMealByID(ctx, userID, req.MealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealNotFound
		}
		return err
	}

	replace := req.Items != nil
	var lines []*entities.MealFood
	if replace {
		var err error
		lines, err = s.buildLines(ctx, req.Items)
		if err != nil {
			return err
		}
	}

	return s.mealRepository.UpdateMeal(ctx, req.MealID, req.MealType, lines, replace)
}

func (s *mealService) GetMeals(ctx context.Context, userID uint, filter domain.MealFilter) ([]domain.MealResponse, error) {
	query := MealQuery{MealType: filter.MealType}
	if filter.Date != "" {
		from, to, err := ParseDay(filter.Date)
		if err != nil {
			return nil, err
		}
		query.From, query.To = &from, &to
	}

	meals, err := s.mealRepository.GetMeals(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	res := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		res = append(res, toMealResponse(m))
	}
	return res, nil
}

func (s *mealService) GetDailySummary(ctx context.Context, userID uint, date string) (domain.DailySummaryResponse, error) {
	if date == "" {
		date = s.now().UTC().Format(domain.DateLayout)
	}
	from, to, err := ParseDay(date)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	meals, err := s.mealRepository.GetMeals(ctx, userID, MealQuery{From: &from, To: &to})
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	summary := domain.DailySummaryResponse{
		Date:      date,
		MealCount: len(meals),
	}
	for _, m := range meals {
		addLines(&summary.Total, m.MealFoods)
	}
	return summary, nil
}

func addLines(total *domain.MacroTotal, lines []*entities.MealFood) {
	for _, line := range lines {
		total.Calories += valueOf(line.Calories)
		total.Protein += valueOf(line.Protein)
		total.Carbs += valueOf(line.Carbs)
		total.Fat += valueOf(line.Fat)
	}
}

func toMealResponse(m *entities.Meal) domain.MealResponse {
	res := domain.MealResponse{
		MealID:   m.MealID,
		DateTime: m.EatenAt.UTC().Format(time.RFC3339),
		MealType: m.MealType,
		Foods:    make([]domain.MealFoodResponse, 0, len(m.MealFoods)),
	}
	addLines(&res.Total, m.MealFoods)

	for _, line := range m.MealFoods {
		name := domain.UnknownFoodName
		if line.Food != nil {
			name = line.Food.Name
		}
		res.Foods = append(res.Foods, domain.MealFoodResponse{
			FoodID:   line.FoodID,
			FoodName: name,
			Quantity: line.Quantity,
			Calories: line.Calories,
			Protein:  line.Protein,
			Carbs:    line.Carbs,
			Fat:      line.Fat,
		})
	}
	return res
}
