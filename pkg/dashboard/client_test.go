package dashboard

import (
	"Balance-Eat/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend mimics the endpoints the dashboard talks to.
type fakeBackend struct {
	mu         sync.Mutex
	foods      map[string]uint
	registered []domain.RegisterFoodRequest
	meals      []domain.CreateMealRequest
	failMeal   bool
}

func reply(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": code < 300, "message": "ok", "data": data})
}

func (b *fakeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("username") != "me@x.com" || r.PostForm.Get("password") != "pw" {
			reply(w, http.StatusUnauthorized, nil)
			return
		}
		reply(w, http.StatusOK, domain.LoginResponse{AccessToken: "tok", TokenType: "bearer"})
	})
	mux.HandleFunc("/foods/search", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		name := r.URL.Query().Get("name")
		res := []domain.FoodSearchResult{}
		for n, id := range b.foods {
			if n == name || n == name+"_곱빼기" {
				res = append(res, domain.FoodSearchResult{FoodID: id, Name: n})
			}
		}
		reply(w, http.StatusOK, res)
	})
	mux.HandleFunc("/foods", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		var req domain.RegisterFoodRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		b.mu.Lock()
		defer b.mu.Unlock()
		id := uint(100 + len(b.registered))
		b.registered = append(b.registered, req)
		b.foods[req.Name] = id
		reply(w, http.StatusCreated, domain.RegisterFoodResponse{Message: domain.MessageSuccessRegisterFood, FoodID: id})
	})
	mux.HandleFunc("/meals", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		if b.failMeal {
			reply(w, http.StatusNotFound, nil)
			return
		}
		var req domain.CreateMealRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		b.mu.Lock()
		defer b.mu.Unlock()
		b.meals = append(b.meals, req)
		reply(w, http.StatusOK, domain.MessageResponse{Message: domain.MessageSuccessCreateMeal})
	})
	return mux
}

func newClientAndBackend(t *testing.T, known map[string]uint) (*Client, *fakeBackend) {
	backend := &fakeBackend{foods: known}
	srv := httptest.NewServer(backend.handler(t))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second)
	require.NoError(t, client.Login(context.Background(), "me@x.com", "pw"))
	require.True(t, client.LoggedIn())
	return client, backend
}

func TestLoginFailure(t *testing.T) {
	srv := httptest.NewServer((&fakeBackend{foods: map[string]uint{}}).handler(t))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Login(context.Background(), "me@x.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestSubmitResolvesAndRegistersFoods(t *testing.T) {
	client, backend := newClientAndBackend(t, map[string]uint{
		"국_된장국":     7,
		"밥_현미밥_곱빼기": 8,
	})

	s := newFixedSession()
	s.Add(rice)
	s.Add(soup)
	s.Add(rice)

	require.NoError(t, client.Submit(context.Background(), s, "lunch"))
	assert.Zero(t, s.Len())

	// rice only had a partial match, so it was registered
	require.Len(t, backend.registered, 1)
	reg := backend.registered[0]
	assert.Equal(t, rice.Name, reg.Name)
	assert.Equal(t, 300, *reg.CaloriesPerUnit)
	assert.Equal(t, 66, *reg.CarbsPerUnit)

	require.Len(t, backend.meals, 1)
	assert.Equal(t, domain.CreateMealRequest{
		MealType: "lunch",
		Items: []domain.MealItemRequest{
			{FoodID: 100, Quantity: 2},
			{FoodID: 7, Quantity: 1},
		},
	}, backend.meals[0])
}

func TestSubmitKeepsSessionOnFailure(t *testing.T) {
	client, backend := newClientAndBackend(t, map[string]uint{"국_된장국": 7})
	backend.failMeal = true

	s := newFixedSession()
	s.Add(soup)

	err := client.Submit(context.Background(), s, "dinner")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, 1, s.Len())
}

func TestSubmitEmptySession(t *testing.T) {
	client, _ := newClientAndBackend(t, map[string]uint{})
	assert.ErrorIs(t, client.Submit(context.Background(), NewSession(), "lunch"), ErrEmptySession)
}
