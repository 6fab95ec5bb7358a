package config

import (
	"Balance-Eat/internal/api/handlers"
	"Balance-Eat/internal/api/routes"
	"Balance-Eat/internal/middleware"
	"Balance-Eat/internal/utils"
	"Balance-Eat/pkg/diet"
	"Balance-Eat/pkg/food"
	"Balance-Eat/pkg/gemini"
	"Balance-Eat/pkg/inventory"
	"Balance-Eat/pkg/jwt"
	"Balance-Eat/pkg/meal"
	"Balance-Eat/pkg/user"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Options overrides the collaborators NewApp would otherwise build from
// configuration. Zero values keep the defaults.
type Options struct {
	JWTSecret string
	Generator gemini.TextGenerator
	SendMail  diet.MailSender
	LogOutput io.Writer
	// RateLimit is requests per second per client; negative disables it.
	RateLimit int
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	return NewAppWithOptions(db, Options{})
}

func NewAppWithOptions(db *gorm.DB, opts Options) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "Balance Eat",
	})
	validator := utils.Validate

	// setting up logging and limiter
	output := opts.LogOutput
	if output == nil {
		file, err := openLogFile(utils.GetConfig("LOG_FILE"))
		if err != nil {
			return nil, err
		}
		output = io.MultiWriter(os.Stdout, file)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     output,
	}))

	rateLimit := opts.RateLimit
	if rateLimit == 0 {
		rateLimit = 10
	}
	if rateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimit,
			Expiration: 1 * time.Second,
		}))
	}

	// utils
	generator := opts.Generator
	if generator == nil {
		generator = gemini.NewClientFromConfig()
	}
	secret := opts.JWTSecret
	if secret == "" {
		secret = utils.GetConfig("JWT_SECRET")
	}
	if secret == "" {
		log.Warn("JWT_SECRET is empty, tokens are signed with an empty key")
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	mealRepository := meal.NewMealRepository(db)

	// Service
	jwtService := jwt.NewJWTService(secret, time.Duration(utils.GetIntConfig("JWT_EXPIRE_MINUTES", 120))*time.Minute)
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository, foodRepository)
	mealService := meal.NewMealService(mealRepository, foodRepository)
	dietService := diet.NewDietService(
		userRepository,
		mealRepository,
		inventoryRepository,
		foodRepository,
		generator,
		opts.SendMail,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	dietHandler := handlers.NewDietHandler(dietService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FoodHandler:      foodHandler,
		InventoryHandler: inventoryHandler,
		MealHandler:      mealHandler,
		DietHandler:      dietHandler,
		Middleware:       middleware.NewMiddleware(userRepository),
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		log.Errorf("error creating logs directory: %v", err)
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Errorf("error opening file: %v", err)
		return nil, err
	}
	return file, nil
}
