package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessGetProfile      = "profile retrieved successfully"
	MessageSuccessUpdateAllergies = "알레르기 정보가 업데이트되었습니다"
	MessageSuccessUpdateProfile   = "프로필 정보가 업데이트되었습니다"
	MessageSuccessDeleteAccount   = "account deleted successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "이메일 또는 비밀번호가 틀렸습니다."
	MessageFailedGetProfile      = "failed to get profile"
	MessageFailedUpdateAllergies = "failed to update allergies"
	MessageFailedUpdateProfile   = "failed to update profile"
	MessageFailedDeleteAccount   = "failed to delete account"

	ErrEmailAlreadyExists = errors.New("이미 존재하는 이메일입니다.")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrIncompleteGoal     = errors.New("goal requires both weight and date")
)

type (
	GoalRequest struct {
		Weight int    `json:"weight" validate:"required,min=1"`
		Date   string `json:"date" validate:"required"`
	}

	GoalResponse struct {
		Weight int       `json:"weight"`
		Date   time.Time `json:"date"`
	}

	SignupRequest struct {
		Email     string      `json:"email" validate:"required,email,max=100"`
		Password  string      `json:"password" validate:"required"`
		Name      string      `json:"name" validate:"required,max=100"`
		Gender    string      `json:"gender" validate:"required,oneof=M F"`
		Height    int         `json:"height" validate:"required,min=1"`
		Weight    int         `json:"weight" validate:"required,min=1"`
		Age       int         `json:"age" validate:"required,min=1"`
		Allergies *string     `json:"allergies"`
		Goal      GoalRequest `json:"goal" validate:"required"`
	}

	LoginRequest struct {
		Username string `json:"username" form:"username" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	LoginResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	ProfileResponse struct {
		UserID    uint          `json:"user_id"`
		Email     string        `json:"email"`
		Name      string        `json:"name"`
		Gender    string        `json:"gender"`
		Height    int           `json:"height"`
		Weight    int           `json:"weight"`
		Age       int           `json:"age"`
		Allergies *string       `json:"allergies"`
		Goal      *GoalResponse `json:"goal"`
	}

	UpdateAllergiesRequest struct {
		Allergies string `json:"allergies" query:"allergies"`
	}

	GoalUpdateRequest struct {
		Weight *int    `json:"weight" validate:"omitempty,min=1"`
		Date   *string `json:"date"`
	}

	UpdateProfileRequest struct {
		Password *string            `json:"password" validate:"omitempty,min=1"`
		Name     *string            `json:"name" validate:"omitempty,max=100"`
		Gender   *string            `json:"gender" validate:"omitempty,oneof=M F"`
		Height   *int               `json:"height" validate:"omitempty,min=1"`
		Weight   *int               `json:"weight" validate:"omitempty,min=1"`
		Age      *int               `json:"age" validate:"omitempty,min=1"`
		Goal     *GoalUpdateRequest `json:"goal"`
	}
)
