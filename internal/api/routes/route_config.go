package routes

import (
	"Packlist-API/internal/api/handlers"
	"Packlist-API/internal/middleware"
	"Packlist-API/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	CategoryHandler handlers.CategoryHandler
	TripHandler     handlers.TripHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Categories()
	c.Trips()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
	}
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories", c.Middleware.AuthMiddleware(c.JWTService))

	categories.Post("/import", c.CategoryHandler.ImportCategories)

	categories.Post("", c.CategoryHandler.CreateCategory)
	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Get("/:id", c.CategoryHandler.GetCategoryDetails)
	categories.Patch("/:id", c.CategoryHandler.UpdateCategory)
	categories.Delete("/:id", c.CategoryHandler.DeleteCategory)

	categories.Post("/:id/items", c.CategoryHandler.AddCategoryItem)
	categories.Patch("/:id/items/:itemID", c.CategoryHandler.UpdateCategoryItem)
	categories.Delete("/:id/items/:itemID", c.CategoryHandler.DeleteCategoryItem)
}

func (c *Config) Trips() {
	trips := c.App.Group("/api/v1/trips", c.Middleware.AuthMiddleware(c.JWTService))

	trips.Get("/dashboard", c.TripHandler.GetDashboardStats)

	trips.Post("", c.TripHandler.CreateTrip)
	trips.Get("", c.TripHandler.GetTrips)
	trips.Get("/:id", c.TripHandler.GetTripDetails)
	trips.Delete("/:id", c.TripHandler.DeleteTrip)
	trips.Post("/:id/complete", c.TripHandler.ToggleComplete)
	trips.Get("/:id/progress", c.TripHandler.GetProgress)

	trips.Post("/:id/items", c.TripHandler.AddTripItem)
	trips.Patch("/:id/items/:itemID", c.TripHandler.UpdateTripItem)
	trips.Delete("/:id/items/:itemID", c.TripHandler.DeleteTripItem)
	trips.Post("/:id/items/:itemID/promote", c.TripHandler.PromoteTripItem)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
