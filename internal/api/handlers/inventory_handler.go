package handlers

import (
	"Balance-Eat/domain"
	"Balance-Eat/internal/api/presenters"
	"Balance-Eat/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		AddInventory(c *fiber.Ctx) error
		GetInventory(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) AddInventory(c *fiber.Ctx) error {
	req := new(domain.AddInventoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddInventory, err)
	}

	if err := h.inventoryService.AddInventory(c.Context(), currentUserID(c), *req); err != nil {
		return serviceError(c, domain.MessageFailedAddInventory, err)
	}

	return presenters.SuccessResponse(c, domain.MessageResponse{Message: domain.MessageSuccessAddInventory}, fiber.StatusOK, domain.MessageSuccessAddInventory)
}

func (h *inventoryHandler) GetInventory(c *fiber.Ctx) error {
	res, err := h.inventoryService.GetInventory(c.Context(), currentUserID(c))
	if err != nil {
		return serviceError(c, domain.MessageFailedGetInventory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventory)
}
