package handlers

import (
	"Balance-Eat/domain"
	"Balance-Eat/internal/api/presenters"
	"Balance-Eat/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Signup(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		GetProfile(c *fiber.Ctx) error
		UpdateAllergies(c *fiber.Ctx) error
		UpdateProfile(c *fiber.Ctx) error
		DeleteAccount(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Signup(c *fiber.Ctx) error {
	req := new(domain.SignupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	profile, err := h.userService.Signup(c.Context(), *req)
	if err != nil {
		return serviceError(c, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusCreated, domain.MessageSuccessRegister)
}

// Login accepts the credentials form encoded (username is the email) or as JSON.
func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return serviceError(c, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return serviceError(c, domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *userHandler) UpdateAllergies(c *fiber.Ctx) error {
	req := new(domain.UpdateAllergiesRequest)
	switch {
	case c.Context().QueryArgs().Has("allergies"):
		req.Allergies = c.Query("allergies")
	case len(c.Body()) > 0:
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	default:
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAllergies, fiber.NewError(fiber.StatusBadRequest, "allergies is required"))
	}

	if err := h.userService.UpdateAllergies(c.Context(), currentUserID(c), req.Allergies); err != nil {
		return serviceError(c, domain.MessageFailedUpdateAllergies, err)
	}

	return presenters.SuccessResponse(c, domain.MessageResponse{Message: domain.MessageSuccessUpdateAllergies}, fiber.StatusOK, domain.MessageSuccessUpdateAllergies)
}

func (h *userHandler) UpdateProfile(c *fiber.Ctx) error {
	req := new(domain.UpdateProfileRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfile, err)
	}

	if err := h.userService.UpdateProfile(c.Context(), currentUserID(c), *req); err != nil {
		return serviceError(c, domain.MessageFailedUpdateProfile, err)
	}

	return presenters.SuccessResponse(c, domain.MessageResponse{Message: domain.MessageSuccessUpdateProfile}, fiber.StatusOK, domain.MessageSuccessUpdateProfile)
}

func (h *userHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.userService.DeleteAccount(c.Context(), currentUserID(c)); err != nil {
		return serviceError(c, domain.MessageFailedDeleteAccount, err)
	}

	return presenters.SuccessResponse(c, domain.MessageResponse{Message: domain.MessageSuccessDeleteAccount}, fiber.StatusOK, domain.MessageSuccessDeleteAccount)
}
