package handlers

import (
	"Balance-Eat/domain"
	"Balance-Eat/internal/api/presenters"
	"Balance-Eat/internal/middleware"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// errorStatus maps a service error onto the HTTP status the client sees.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrIncompleteGoal):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrFoodNotFound),
		errors.Is(err, domain.ErrMealNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrGoalNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrTextGeneration),
		errors.Is(err, domain.ErrMailNotSent):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func serviceError(c *fiber.Ctx, message string, err error) error {
	code := errorStatus(err)
	if code == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return presenters.ErrorResponse(c, code, message, err)
}

func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(middleware.LocalUserID).(uint)
	return id
}
