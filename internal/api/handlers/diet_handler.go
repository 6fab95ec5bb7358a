package handlers

import (
	"Balance-Eat/domain"
	"Balance-Eat/internal/api/presenters"
	"Balance-Eat/pkg/diet"

	"github.com/gofiber/fiber/v2"
)

type (
	DietHandler interface {
		GetRecommendation(c *fiber.Ctx) error
		MailRecommendation(c *fiber.Ctx) error
	}

	dietHandler struct {
		dietService diet.DietService
	}
)

func NewDietHandler(dietService diet.DietService) DietHandler {
	return &dietHandler{dietService: dietService}
}

func (h *dietHandler) GetRecommendation(c *fiber.Ctx) error {
	res, err := h.dietService.Recommend(c.Context(), currentUserID(c))
	if err != nil {
		return serviceError(c, domain.MessageFailedGetRecommendation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendation)
}

func (h *dietHandler) MailRecommendation(c *fiber.Ctx) error {
	res, err := h.dietService.MailRecommendation(c.Context(), currentUserID(c))
	if err != nil {
		return serviceError(c, domain.MessageFailedMailRecommendation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMailRecommendation)
}
