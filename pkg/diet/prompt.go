package diet

import (
	"Balance-Eat/domain"
	"fmt"
	"strings"
)

const promptTemplate = "사용자의 목표 칼로리는 %dkcal이며, 오늘 섭취한 칼로리는 %dkcal입니다.\n" +
	"현재 가지고 있는 재료는 다음과 같습니다:\n" +
	"%s\n" +
	"이 재료와 정보를 바탕으로 아침, 점심, 저녁 식단을 추천해주세요."

// AllergyTokens splits a comma separated allergy list. Blank tokens are dropped.
func AllergyTokens(allergies *string) []string {
	if allergies == nil {
		return nil
	}
	var tokens []string
	for _, tok := range strings.Split(*allergies, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// FilterAllergens drops ingredients whose name equals an allergy token.
// Matching is exact: "새우" removes 새우 but keeps 새우튀김.
func FilterAllergens(items []domain.PromptIngredient, allergies *string) []domain.PromptIngredient {
	tokens := AllergyTokens(allergies)
	if len(tokens) == 0 {
		return items
	}

	blocked := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		blocked[tok] = struct{}{}
	}

	safe := make([]domain.PromptIngredient, 0, len(items))
	for _, item := range items {
		if _, ok := blocked[item.Name]; ok {
			continue
		}
		safe = append(safe, item)
	}
	return safe
}

func BuildPrompt(goalWeight, totalCalories int, items []domain.PromptIngredient) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s(%d개)", item.Name, item.Quantity))
	}
	return fmt.Sprintf(promptTemplate, goalWeight*domain.CaloriesPerGoalKg, totalCalories, strings.Join(parts, ", "))
}
