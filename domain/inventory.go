package domain

var (
	MessageSuccessAddInventory = "재고가 추가되었습니다"
	MessageSuccessGetInventory = "inventory retrieved successfully"

	MessageFailedAddInventory = "failed to add inventory"
	MessageFailedGetInventory = "failed to get inventory"

	UnknownFoodName = "Unknown"
)

type (
	AddInventoryRequest struct {
		FoodID   uint `json:"food_id" validate:"required"`
		Quantity int  `json:"quantity" validate:"required,min=1"`
	}

	InventoryResponse struct {
		FoodID   uint   `json:"food_id"`
		FoodName string `json:"food_name"`
		Quantity int    `json:"quantity"`
	}
)
