package inventory

import (
	"Balance-Eat/domain"
	"Balance-Eat/pkg/food"
	"context"
)

type (
	InventoryService interface {
		AddInventory(ctx context.Context, userID uint, req domain.AddInventoryRequest) error
		GetInventory(ctx context.Context, userID uint) ([]domain.InventoryResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		foodRepository      food.FoodRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, foodRepository food.FoodRepository) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		foodRepository:      foodRepository,
	}
}

// AddInventory does not check that the food exists.
func (s *inventoryService) AddInventory(ctx context.Context, userID uint, req domain.AddInventoryRequest) error {
	return s.inventoryRepository.AddQuantity(ctx, userID, req.FoodID, req.Quantity)
}

func (s *inventoryService) GetInventory(ctx context.Context, userID uint) ([]domain.InventoryResponse, error) {
	rows, err := s.inventoryRepository.GetInventoryByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.FoodID)
	}
	foods, err := s.foodRepository.GetFoodsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	res := make([]domain.InventoryResponse, 0, len(rows))
	for _, row := range rows {
		name := domain.UnknownFoodName
		if f, ok := foods[row.FoodID]; ok {
			name = f.Name
		}
		res = append(res, domain.InventoryResponse{
			FoodID:   row.FoodID,
			FoodName: name,
			Quantity: row.Quantity,
		})
	}
	return res, nil
}
