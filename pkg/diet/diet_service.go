package diet

import (
	"Balance-Eat/domain"
	"Balance-Eat/entities"
	"Balance-Eat/internal/utils/mailing"
	"Balance-Eat/pkg/food"
	"Balance-Eat/pkg/gemini"
	"Balance-Eat/pkg/inventory"
	"Balance-Eat/pkg/meal"
	"Balance-Eat/pkg/user"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

const mailSubject = "[Balance Eat] 오늘의 식단 추천"

type (
	// MailSender delivers a plain text mail.
	MailSender func(toEmail, subject, body string) error

	DietService interface {
		Recommend(ctx context.Context, userID uint) (domain.AIDietResponse, error)
		MailRecommendation(ctx context.Context, userID uint) (domain.AIDietResponse, error)
	}

	dietService struct {
		userRepository      user.UserRepository
		mealRepository      meal.MealRepository
		inventoryRepository inventory.InventoryRepository
		foodRepository      food.FoodRepository
		generator           gemini.TextGenerator
		sendMail            MailSender
	}
)

func NewDietService(
	userRepository user.UserRepository,
	mealRepository meal.MealRepository,
	inventoryRepository inventory.InventoryRepository,
	foodRepository food.FoodRepository,
	generator gemini.TextGenerator,
	sendMail MailSender,
) DietService {
	if sendMail == nil {
		sendMail = mailing.SendMail
	}
	return &dietService{
		userRepository:      userRepository,
		mealRepository:      mealRepository,
		inventoryRepository: inventoryRepository,
		foodRepository:      foodRepository,
		generator:           generator,
		sendMail:            sendMail,
	}
}

func (s *dietService) Recommend(ctx context.Context, userID uint) (domain.AIDietResponse, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AIDietResponse{}, domain.ErrUserNotFound
		}
		return domain.AIDietResponse{}, err
	}
	return s.recommendFor(ctx, u)
}

func (s *dietService) MailRecommendation(ctx context.Context, userID uint) (domain.AIDietResponse, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AIDietResponse{}, domain.ErrUserNotFound
		}
		return domain.AIDietResponse{}, err
	}

	res, err := s.recommendFor(ctx, u)
	if err != nil {
		return domain.AIDietResponse{}, err
	}

	if err := s.sendMail(u.Email, mailSubject, res.Recommendation); err != nil {
		log.Errorf("mail recommendation to user %d: %v", u.UserID, err)
		return domain.AIDietResponse{}, fmt.Errorf("%w: %v", domain.ErrMailNotSent, err)
	}
	return res, nil
}

func (s *dietService) recommendFor(ctx context.Context, u *entities.User) (domain.AIDietResponse, error) {
	prompt, err := s.buildPrompt(ctx, u)
	if err != nil {
		return domain.AIDietResponse{}, err
	}

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		log.Errorf("generate recommendation for user %d: %v", u.UserID, err)
		return domain.AIDietResponse{}, fmt.Errorf("%w: %v", domain.ErrTextGeneration, err)
	}

	return domain.AIDietResponse{Recommendation: strings.TrimSpace(text)}, nil
}

func (s *dietService) buildPrompt(ctx context.Context, u *entities.User) (string, error) {
	goal, err := s.userRepository.GetLatestGoal(ctx, u.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrGoalNotFound
		}
		return "", err
	}

	// lifetime total, not just today
	eaten, err := s.mealRepository.SumCalories(ctx, u.UserID)
	if err != nil {
		return "", err
	}

	rows, err := s.inventoryRepository.GetInventoryByUserID(ctx, u.UserID)
	if err != nil {
		return "", err
	}
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.FoodID)
	}
	foods, err := s.foodRepository.GetFoodsByIDs(ctx, ids)
	if err != nil {
		return "", err
	}

	items := make([]domain.PromptIngredient, 0, len(rows))
	for _, row := range rows {
		f, ok := foods[row.FoodID]
		if !ok {
			continue
		}
		items = append(items, domain.PromptIngredient{Name: f.Name, Quantity: row.Quantity})
	}

	return BuildPrompt(goal.Weight, eaten, FilterAllergens(items, u.Allergies)), nil
}
