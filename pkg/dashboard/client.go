package dashboard

import (
	"Balance-Eat/domain"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrEmptySession = errors.New("no foods staged")

type (
	Client struct {
		baseURL    string
		httpClient *http.Client
		token      string
	}

	envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}

	// APIError is a non 2xx reply from the backend.
	APIError struct {
		StatusCode int
		Message    string
		Detail     string
	}
)

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) LoggedIn() bool {
	return c.token != ""
}

func (c *Client) Login(ctx context.Context, email, password string) error {
	form := url.Values{"username": {email}, "password": {password}}
	var res domain.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &res); err != nil {
		return err
	}
	c.token = res.AccessToken
	return nil
}

func (c *Client) SearchFoods(ctx context.Context, name string) ([]domain.FoodSearchResult, error) {
	var res []domain.FoodSearchResult
	err := c.do(ctx, http.MethodGet, "/foods/search?name="+url.QueryEscape(name), "", nil, &res)
	return res, err
}

func (c *Client) RegisterFood(ctx context.Context, req domain.RegisterFoodRequest) (uint, error) {
	var res domain.RegisterFoodResponse
	if err := c.doJSON(ctx, http.MethodPost, "/foods", req, &res); err != nil {
		return 0, err
	}
	return res.FoodID, nil
}

func (c *Client) CreateMeal(ctx context.Context, req domain.CreateMealRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/meals", req, nil)
}

// ResolveFood returns the backend id of the food with exactly this name,
// registering it from the catalog values when no such food exists.
func (c *Client) ResolveFood(ctx context.Context, food CatalogFood) (uint, error) {
	results, err := c.SearchFoods(ctx, food.Name)
	if err != nil {
		return 0, err
	}
	for _, r := range results {
		if r.Name == food.Name {
			return r.FoodID, nil
		}
	}

	round := func(v float64) *int {
		n := int(math.Round(v))
		return &n
	}
	return c.RegisterFood(ctx, domain.RegisterFoodRequest{
		Name:            food.Name,
		Unit:            1,
		CaloriesPerUnit: round(food.Calories),
		ProteinPerUnit:  round(food.Protein),
		CarbsPerUnit:    round(food.Carbs),
		FatPerUnit:      round(food.Fat),
	})
}

// Submit posts the staged foods as one meal. Each distinct food becomes one
// line whose quantity is how many times it was staged. The session is only
// cleared once the meal is stored.
func (c *Client) Submit(ctx context.Context, session *Session, mealType string) error {
	order, counts := session.Counts()
	if len(order) == 0 {
		return ErrEmptySession
	}

	req := domain.CreateMealRequest{MealType: mealType}
	for _, food := range order {
		id, err := c.ResolveFood(ctx, food)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", food.Name, err)
		}
		req.Items = append(req.Items, domain.MealItemRequest{FoodID: id, Quantity: counts[food.Name]})
	}

	if err := c.CreateMeal(ctx, req); err != nil {
		return err
	}
	session.Clear()
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(body), out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message, Detail: env.Error}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
