package handlers

import (
	"Balance-Eat/domain"
	"Balance-Eat/internal/api/presenters"
	"Balance-Eat/pkg/meal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		CreateMeal(c *fiber.Ctx) error
		EditMeal(c *fiber.Ctx) error
		GetMeals(c *fiber.Ctx) error
		GetDailySummary(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) CreateMeal(c *fiber.Ctx) error {
	req := new(domain.CreateMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMeal, err)
	}

	if err := h.mealService.CreateMeal(c.Context(), currentUserID(c), *req); err != nil {
		return serviceError(c, domain.MessageFailedCreateMeal, err)
	}

	return presenters.SuccessResponse(c, domain.MessageResponse{Message: domain.MessageSuccessCreateMeal}, fiber.StatusOK, domain.MessageSuccessCreateMeal)
}

func (h *mealHandler) EditMeal(c *fiber.Ctx) error {
	req := new(domain.EditMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditMeal, err)
	}

	if err := h.mealService.EditMeal(c.Context(), currentUserID(c), *req); err != nil {
		return serviceError(c, domain.MessageFailedEditMeal, err)
	}

	return presenters.SuccessResponse(c, domain.MessageResponse{Message: domain.MessageSuccessEditMeal}, fiber.StatusOK, domain.MessageSuccessEditMeal)
}

func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	filter := new(domain.MealFilter)
	if err := c.QueryParser(filter); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(filter); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeals, err)
	}

	res, err := h.mealService.GetMeals(c.Context(), currentUserID(c), *filter)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) GetDailySummary(c *fiber.Ctx) error {
	res, err := h.mealService.GetDailySummary(c.Context(), currentUserID(c), c.Query("date"))
	if err != nil {
		return serviceError(c, domain.MessageFailedGetDailySummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDailySummary)
}
