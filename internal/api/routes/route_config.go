package routes

import (
	"Balance-Eat/domain"
	"Balance-Eat/internal/api/handlers"
	"Balance-Eat/internal/middleware"
	"Balance-Eat/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FoodHandler      handlers.FoodHandler
	InventoryHandler handlers.InventoryHandler
	MealHandler      handlers.MealHandler
	DietHandler      handlers.DietHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Food()
	c.Inventory()
	c.Meal()
	c.Diet()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessageSuccessPing})
	})
}

func (c *Config) User() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Post("/signup", c.UserHandler.Signup)
	c.App.Post("/login", c.UserHandler.Login)

	profile := c.App.Group("/profile", auth)
	{
		profile.Get("/", c.UserHandler.GetProfile)
		profile.Patch("/allergies", c.UserHandler.UpdateAllergies)
		profile.Patch("/edit-profile", c.UserHandler.UpdateProfile)
		profile.Delete("/", c.UserHandler.DeleteAccount)
	}
}

func (c *Config) Food() {
	foods := c.App.Group("/foods")
	{
		foods.Get("/search", c.FoodHandler.SearchFoods)
		foods.Get("/:id", c.FoodHandler.GetFood)
		foods.Post("/", c.FoodHandler.RegisterFood)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	{
		inventory.Post("/", c.InventoryHandler.AddInventory)
		inventory.Get("/", c.InventoryHandler.GetInventory)
	}
}

func (c *Config) Meal() {
	meals := c.App.Group("/meals", c.Middleware.AuthMiddleware(c.JWTService))
	{
		meals.Post("/", c.MealHandler.CreateMeal)
		meals.Get("/", c.MealHandler.GetMeals)
		meals.Get("/daily-summary", c.MealHandler.GetDailySummary)
		meals.Patch("/edit-meal", c.MealHandler.EditMeal)
	}
}

func (c *Config) Diet() {
	diet := c.App.Group("/ai-diet", c.Middleware.AuthMiddleware(c.JWTService))
	{
		diet.Get("/", c.DietHandler.GetRecommendation)
		diet.Post("/mail", c.DietHandler.MailRecommendation)
	}
}
