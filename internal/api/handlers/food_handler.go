package handlers

import (
	"Balance-Eat/domain"
	"Balance-Eat/internal/api/presenters"
	"Balance-Eat/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		RegisterFood(c *fiber.Ctx) error
		GetFood(c *fiber.Ctx) error
		SearchFoods(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) RegisterFood(c *fiber.Ctx) error {
	req := new(domain.RegisterFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterFood, err)
	}

	res, err := h.foodService.RegisterFood(c.Context(), *req)
	if err != nil {
		return serviceError(c, domain.MessageFailedRegisterFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegisterFood)
}

func (h *foodHandler) GetFood(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFood, fiber.ErrBadRequest)
	}

	res, err := h.foodService.GetFood(c.Context(), uint(id))
	if err != nil {
		return serviceError(c, domain.MessageFailedGetFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFood)
}

func (h *foodHandler) SearchFoods(c *fiber.Ctx) error {
	req := new(domain.SearchFoodRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchFoods, err)
	}

	res, err := h.foodService.SearchFoods(c.Context(), req.Name)
	if err != nil {
		return serviceError(c, domain.MessageFailedSearchFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchFoods)
}
