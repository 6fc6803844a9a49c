package config

import (
	"os"
	"time"

	"fridgemate/internal/api/handlers"
	"fridgemate/internal/api/routes"
	"fridgemate/internal/middleware"
	"fridgemate/internal/utils"
	"fridgemate/internal/utils/storage"
	"fridgemate/pkg/food"
	"fridgemate/pkg/jwt"
	"fridgemate/pkg/notify"
	"fridgemate/pkg/reconcile"
	"fridgemate/pkg/shopping"
	"fridgemate/pkg/template"
	"fridgemate/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers into a fiber app.
// db is only used when STORAGE_DRIVER is postgres; with the file
// driver it may be nil.
func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	var (
		userRepository     user.UserRepository
		foodRepository     food.FoodRepository
		shoppingRepository shopping.ShoppingRepository
		templateRepository template.TemplateRepository
	)
	if utils.GetConfig("STORAGE_DRIVER") == "postgres" {
		userRepository = user.NewUserRepository(db)
		foodRepository = food.NewFoodRepository(db)
		shoppingRepository = shopping.NewShoppingRepository(db)
		templateRepository = template.NewTemplateRepository(db)
	} else {
		dataDir := utils.GetConfig("DATA_DIR")
		userRepository = user.NewUserFileRepository(dataDir)
		foodRepository = food.NewFoodFileRepository(dataDir)
		shoppingRepository = shopping.NewShoppingFileRepository(dataDir)
		templateRepository = template.NewTemplateFileRepository(dataDir)
	}

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, s3)
	shoppingService := shopping.NewShoppingService(shoppingRepository)
	templateService := template.NewTemplateService(templateRepository)
	reconcileService := reconcile.NewReconcileService(foodService, shoppingService, templateService)
	notifyService := notify.NewNotifyService(foodService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, notifyService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, reconcileService, validator)
	templateHandler := handlers.NewTemplateHandler(templateService, reconcileService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		FoodHandler:     foodHandler,
		ShoppingHandler: shoppingHandler,
		TemplateHandler: templateHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()

	app.Hooks().OnShutdown(func() error {
		userService.Close()
		foodService.Close()
		shoppingService.Close()
		templateService.Close()
		return nil
	})

	return app, nil
}
