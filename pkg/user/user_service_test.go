package user

import (
	"Balance-Eat/domain"
	"Balance-Eat/entities"
	"Balance-Eat/internal/utils/testdb"
	"Balance-Eat/pkg/jwt"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (UserService, *gorm.DB, jwt.JWTService) {
	db := testdb.New(t)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	return NewUserService(NewUserRepository(db), jwtService), db, jwtService
}

func signupRequest(email string) domain.SignupRequest {
	allergies := "새우,땅콩"
	return domain.SignupRequest{
		Email:     email,
		Password:  "pw1234",
		Name:      "민지",
		Gender:    entities.GenderFemale,
		Height:    165,
		Weight:    60,
		Age:       28,
		Allergies: &allergies,
		Goal:      domain.GoalRequest{Weight: 55, Date: "2025-12-31T00:00:00"},
	}
}

func TestSignupCreatesUserAndGoal(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Signup(ctx, signupRequest("a@x.com"))
	require.NoError(t, err)
	assert.NotZero(t, profile.UserID)
	require.NotNil(t, profile.Goal)
	assert.Equal(t, 55, profile.Goal.Weight)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), profile.Goal.Date)

	var stored entities.User
	require.NoError(t, db.First(&stored, profile.UserID).Error)
	assert.NotEqual(t, "pw1234", stored.HashedPW)
	assert.True(t, CheckPassword(stored.HashedPW, "pw1234"))
}

func TestSignupDuplicateEmailLeavesNoExtraRows(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest("dup@x.com"))
	require.NoError(t, err)

	_, err = svc.Signup(ctx, signupRequest("dup@x.com"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	var users, goals int64
	db.Model(&entities.User{}).Count(&users)
	db.Model(&entities.Goal{}).Count(&goals)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 1, goals)
}

func TestSignupRejectsBadGoalDate(t *testing.T) {
	svc, db, _ := newTestService(t)

	req := signupRequest("date@x.com")
	req.Goal.Date = "31/12/2025"
	_, err := svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	var users int64
	db.Model(&entities.User{}).Count(&users)
	assert.Zero(t, users)
}

func TestLogin(t *testing.T) {
	svc, _, jwtService := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Signup(ctx, signupRequest("login@x.com"))
	require.NoError(t, err)

	res, err := svc.Login(ctx, domain.LoginRequest{Username: "login@x.com", Password: "pw1234"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", res.TokenType)

	id, err := jwtService.GetUserIDByToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, profile.UserID, id)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "login@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "nobody@x.com", Password: "pw1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdateAllergies(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Signup(ctx, signupRequest("allergy@x.com"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateAllergies(ctx, profile.UserID, "우유"))

	got, err := svc.GetProfile(ctx, profile.UserID)
	require.NoError(t, err)
	require.NotNil(t, got.Allergies)
	assert.Equal(t, "우유", *got.Allergies)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Signup(ctx, signupRequest("edit@x.com"))
	require.NoError(t, err)

	name := "지민"
	weight := 58
	goalWeight := 52
	err = svc.UpdateProfile(ctx, profile.UserID, domain.UpdateProfileRequest{
		Name:   &name,
		Weight: &weight,
		Goal:   &domain.GoalUpdateRequest{Weight: &goalWeight},
	})
	require.NoError(t, err)

	got, err := svc.GetProfile(ctx, profile.UserID)
	require.NoError(t, err)
	assert.Equal(t, "지민", got.Name)
	assert.Equal(t, 58, got.Weight)
	assert.Equal(t, 165, got.Height)
	require.NotNil(t, got.Goal)
	assert.Equal(t, 52, got.Goal.Weight)
	assert.True(t, profile.Goal.Date.Equal(got.Goal.Date))
}

func TestUpdateProfileRollsBackWhenGoalSaveFails(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Signup(ctx, signupRequest("rollback@x.com"))
	require.NoError(t, err)

	failGoals := func(tx *gorm.DB) {
		if tx.Statement.Table == "goals" {
			_ = tx.AddError(errors.New("goal write failed"))
		}
	}
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:fail_goals", failGoals))

	name := "지민"
	goalWeight := 50
	err = svc.UpdateProfile(ctx, profile.UserID, domain.UpdateProfileRequest{
		Name: &name,
		Goal: &domain.GoalUpdateRequest{Weight: &goalWeight},
	})
	require.Error(t, err)

	require.NoError(t, db.Callback().Update().Remove("test:fail_goals"))

	got, err := svc.GetProfile(ctx, profile.UserID)
	require.NoError(t, err)
	assert.Equal(t, "민지", got.Name)
	require.NotNil(t, got.Goal)
	assert.Equal(t, 55, got.Goal.Weight)
}

func TestUpdateProfilePassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Signup(ctx, signupRequest("pw@x.com"))
	require.NoError(t, err)

	password := "new-pass"
	require.NoError(t, svc.UpdateProfile(ctx, profile.UserID, domain.UpdateProfileRequest{Password: &password}))

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "pw@x.com", Password: "pw1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, domain.LoginRequest{Username: "pw@x.com", Password: "new-pass"})
	assert.NoError(t, err)
}

func TestDeleteAccountRemovesOwnedRows(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Signup(ctx, signupRequest("bye@x.com"))
	require.NoError(t, err)

	food := entities.Food{Name: "사과"}
	require.NoError(t, db.Create(&food).Error)
	require.NoError(t, db.Create(&entities.UserFoodInventory{UserID: profile.UserID, FoodID: food.FoodID, Quantity: 2}).Error)
	meal := entities.Meal{
		UserID:    profile.UserID,
		EatenAt:   time.Now().UTC(),
		MealType:  entities.MealTypeLunch,
		MealFoods: []*entities.MealFood{{FoodID: food.FoodID, Quantity: 1}},
	}
	require.NoError(t, db.Create(&meal).Error)

	require.NoError(t, svc.DeleteAccount(ctx, profile.UserID))

	for _, model := range []any{&entities.User{}, &entities.Goal{}, &entities.UserFoodInventory{}, &entities.Meal{}, &entities.MealFood{}} {
		var n int64
		db.Model(model).Count(&n)
		assert.Zero(t, n, "%T", model)
	}

	var foods int64
	db.Model(&entities.Food{}).Count(&foods)
	assert.EqualValues(t, 1, foods)

	assert.ErrorIs(t, svc.DeleteAccount(ctx, profile.UserID), domain.ErrUserNotFound)
}
