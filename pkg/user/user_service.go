package user

import (
	"Balance-Eat/domain"
	"Balance-Eat/entities"
	"Balance-Eat/pkg/jwt"
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var goalDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	domain.DateLayout,
}

type (
	UserService interface {
		Signup(ctx context.Context, req domain.SignupRequest) (domain.ProfileResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetProfile(ctx context.Context, userID uint) (domain.ProfileResponse, error)
		UpdateAllergies(ctx context.Context, userID uint, allergies string) error
		UpdateProfile(ctx context.Context, userID uint, req domain.UpdateProfileRequest) error
		DeleteAccount(ctx context.Context, userID uint) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

func ParseGoalDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range goalDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidDate
}

func (s *userService) Signup(ctx context.Context, req domain.SignupRequest) (domain.ProfileResponse, error) {
	taken, err := s.userRepository.IsEmailTaken(ctx, req.Email)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	if taken {
		return domain.ProfileResponse{}, domain.ErrEmailAlreadyExists
	}

	goalDate, err := ParseGoalDate(req.Goal.Date)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	user := &entities.User{
		Email:     req.Email,
		HashedPW:  hashed,
		Name:      req.Name,
		Gender:    req.Gender,
		Height:    req.Height,
		Weight:    req.Weight,
		Age:       req.Age,
		Allergies: req.Allergies,
		Goal: &entities.Goal{
			Weight: req.Goal.Weight,
			Date:   goalDate,
		},
	}

	if err := s.userRepository.CreateUserWithGoal(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ProfileResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.ProfileResponse{}, err
	}

	return toProfileResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Username)
	if err != nil {
		if isNotFound(err) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if !CheckPassword(user.HashedPW, req.Password) {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.UserID)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}
	return toProfileResponse(user), nil
}

func (s *userService) UpdateAllergies(ctx context.Context, userID uint, allergies string) error {
	return s.userRepository.UpdateAllergies(ctx, userID, allergies)
}

// UpdateProfile applies only the fields present in req. A goal is updated in
// place, or created when the user has none yet.
func (s *userService) UpdateProfile(ctx context.Context, userID uint, req domain.UpdateProfileRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Password != nil {
		hashed, err := HashPassword(*req.Password)
		if err != nil {
			return err
		}
		user.HashedPW = hashed
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Height != nil {
		user.Height = *req.Height
	}
	if req.Weight != nil {
		user.Weight = *req.Weight
	}
	if req.Age != nil {
		user.Age = *req.Age
	}

	var goal *entities.Goal
	if req.Goal != nil {
		goal, err = applyGoalUpdate(user, *req.Goal)
		if err != nil {
			return err
		}
	}

	return s.userRepository.UpdateUserWithGoal(ctx, user, goal)
}

func applyGoalUpdate(user *entities.User, req domain.GoalUpdateRequest) (*entities.Goal, error) {
	goal := user.Goal
	if goal == nil {
		if req.Weight == nil || req.Date == nil {
			return nil, domain.ErrIncompleteGoal
		}
		goal = &entities.Goal{UserID: user.UserID}
	}

	if req.Weight != nil {
		goal.Weight = *req.Weight
	}
	if req.Date != nil {
		date, err := ParseGoalDate(*req.Date)
		if err != nil {
			return nil, err
		}
		goal.Date = date
	}
	return goal, nil
}

func (s *userService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		if isNotFound(err) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func toProfileResponse(user *entities.User) domain.ProfileResponse {
	res := domain.ProfileResponse{
		UserID:    user.UserID,
		Email:     user.Email,
		Name:      user.Name,
		Gender:    user.Gender,
		Height:    user.Height,
		Weight:    user.Weight,
		Age:       user.Age,
		Allergies: user.Allergies,
	}
	if user.Goal != nil {
		res.Goal = &domain.GoalResponse{
			Weight: user.Goal.Weight,
			Date:   user.Goal.Date,
		}
	}
	return res
}
