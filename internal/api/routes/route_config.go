package routes

import (
	"fridgemate/internal/api/handlers"
	"fridgemate/internal/middleware"
	"fridgemate/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	FoodHandler     handlers.FoodHandler
	ShoppingHandler handlers.ShoppingHandler
	TemplateHandler handlers.TemplateHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.ShoppingItems()
	c.Templates()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboard)

	// Basic CRUD operations
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
	foodItems.Post("/batch-delete", c.FoodHandler.BatchDeleteFoodItems)

	// Special operations
	foodItems.Post("/receipt-scan", c.FoodHandler.UploadReceipt)
	foodItems.Get("/receipt-scan/:id", c.FoodHandler.GetReceiptScanResult)
	foodItems.Post("/save-scanned", c.FoodHandler.SaveScannedItems)
	foodItems.Post("/expiry-digest", c.FoodHandler.SendExpiryDigest)
}

func (c *Config) ShoppingItems() {
	shoppingItems := c.App.Group("/api/v1/shopping-items", c.Middleware.AuthMiddleware(c.JWTService))

	// Basic CRUD operations
	shoppingItems.Post("", c.ShoppingHandler.AddShoppingItem)
	shoppingItems.Get("", c.ShoppingHandler.GetShoppingItems)
	shoppingItems.Put("/:id", c.ShoppingHandler.UpdateShoppingItem)
	shoppingItems.Delete("/:id", c.ShoppingHandler.DeleteShoppingItem)
	shoppingItems.Post("/batch-delete", c.ShoppingHandler.BatchDeleteShoppingItems)

	// Special operations
	shoppingItems.Post("/:id/toggle", c.ShoppingHandler.ToggleShoppingItem)
	shoppingItems.Post("/checkout", c.ShoppingHandler.CheckoutCheckedItems)
	shoppingItems.Post("/save-template", c.ShoppingHandler.SaveListAsTemplate)
}

func (c *Config) Templates() {
	templates := c.App.Group("/api/v1/templates", c.Middleware.AuthMiddleware(c.JWTService))

	// Basic CRUD operations
	templates.Post("", c.TemplateHandler.AddTemplate)
	templates.Get("", c.TemplateHandler.GetTemplates)
	templates.Get("/:id", c.TemplateHandler.GetTemplateDetails)
	templates.Delete("/:id", c.TemplateHandler.DeleteTemplate)

	// Special operations
	templates.Patch("/:id/rename", c.TemplateHandler.RenameTemplate)
	templates.Put("/:id/items", c.TemplateHandler.ReplaceTemplateItems)
	templates.Post("/:id/apply", c.TemplateHandler.ApplyTemplate)
}
