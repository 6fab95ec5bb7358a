package middleware

import (
	"Balance-Eat/entities"
	"Balance-Eat/internal/utils/testdb"
	"Balance-Eat/pkg/jwt"
	"Balance-Eat/pkg/user"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	db := testdb.New(t)
	u := entities.User{Email: "m@x.com", HashedPW: "x", Name: "n", Gender: entities.GenderMale, Height: 1, Weight: 1, Age: 1}
	require.NoError(t, db.Create(&u).Error)

	jwtService := jwt.NewJWTService("secret", time.Hour)
	m := NewMiddleware(user.NewUserRepository(db))

	app := fiber.New()
	app.Get("/me", m.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.SendString(strconv.FormatUint(uint64(c.Locals(LocalUserID).(uint)), 10))
	})

	valid, err := jwtService.GenerateTokenUser(u.UserID)
	require.NoError(t, err)
	ghost, err := jwtService.GenerateTokenUser(u.UserID + 10)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"unknown user", "Bearer " + ghost, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}
}
