package inventory

import (
	"Balance-Eat/domain"
	"Balance-Eat/entities"
	"Balance-Eat/internal/utils/testdb"
	"Balance-Eat/pkg/food"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (InventoryService, *gorm.DB) {
	db := testdb.New(t)
	return NewInventoryService(NewInventoryRepository(db), food.NewFoodRepository(db)), db
}

func TestAddInventoryAccumulates(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	apple := entities.Food{Name: "사과"}
	require.NoError(t, db.Create(&apple).Error)

	require.NoError(t, svc.AddInventory(ctx, 1, domain.AddInventoryRequest{FoodID: apple.FoodID, Quantity: 2}))
	require.NoError(t, svc.AddInventory(ctx, 1, domain.AddInventoryRequest{FoodID: apple.FoodID, Quantity: 3}))

	var rows []entities.UserFoodInventory
	require.NoError(t, db.Where("user_id = ?", 1).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Quantity)
}

func TestAddInventoryConcurrent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.AddInventory(ctx, 7, domain.AddInventoryRequest{FoodID: 3, Quantity: 1}))
		}()
	}
	wg.Wait()

	var rows []entities.UserFoodInventory
	require.NoError(t, db.Where("user_id = ?", 7).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].Quantity)
}

func TestInventoriesAreScopedPerUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddInventory(ctx, 1, domain.AddInventoryRequest{FoodID: 1, Quantity: 2}))
	require.NoError(t, svc.AddInventory(ctx, 2, domain.AddInventoryRequest{FoodID: 1, Quantity: 4}))

	mine, err := svc.GetInventory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 2, mine[0].Quantity)
}

func TestGetInventoryResolvesNames(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	egg := entities.Food{Name: "계란"}
	require.NoError(t, db.Create(&egg).Error)

	require.NoError(t, svc.AddInventory(ctx, 1, domain.AddInventoryRequest{FoodID: egg.FoodID, Quantity: 6}))
	require.NoError(t, svc.AddInventory(ctx, 1, domain.AddInventoryRequest{FoodID: 404, Quantity: 1}))

	got, err := svc.GetInventory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryResponse{
		{FoodID: egg.FoodID, FoodName: "계란", Quantity: 6},
		{FoodID: 404, FoodName: domain.UnknownFoodName, Quantity: 1},
	}, got)
}

func TestGetInventoryEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.GetInventory(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
