package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecommendation  = "recommendation generated successfully"
	MessageSuccessMailRecommendation = "recommendation sent by mail"

	MessageFailedGetRecommendation  = "failed to generate recommendation"
	MessageFailedMailRecommendation = "failed to mail recommendation"

	ErrTextGeneration = errors.New("text generation failed")
	ErrMailNotSent    = errors.New("mail could not be sent")
)

// CaloriesPerGoalKg converts a goal weight into a daily calorie target.
const CaloriesPerGoalKg = 30

type (
	AIDietResponse struct {
		Recommendation string `json:"recommendation"`
	}

	PromptIngredient struct {
		Name     string
		Quantity int
	}
)
