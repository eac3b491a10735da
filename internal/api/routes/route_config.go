package routes

import (
	"smart-pantry-backend/internal/api/handlers"
	"smart-pantry-backend/internal/middleware"
	"smart-pantry-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	PantryHandler       handlers.PantryHandler
	SuggestionHandler   handlers.SuggestionHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
	DemoMode            bool
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Pantry()
	c.Suggestions()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry", c.Middleware.AuthMiddleware(c.JWTService))

	pantry.Get("", c.PantryHandler.GetPantry)
	pantry.Post("", c.PantryHandler.AddItem)
	pantry.Delete("/expired", c.PantryHandler.ClearExpired)
	pantry.Delete("/:id", c.PantryHandler.DeleteItem)
	pantry.Post("/photo", c.PantryHandler.UploadItemPhoto)

	pantry.Post("/notify-test", c.NotificationHandler.SendTest)
}

func (c *Config) Suggestions() {
	suggestions := c.App.Group("/api/v1/suggestions", c.Middleware.AuthMiddleware(c.JWTService))

	suggestions.Get("", c.SuggestionHandler.GetForItem)
	suggestions.Get("/pantry", c.SuggestionHandler.GetForPantry)
	suggestions.Get("/saved", c.SuggestionHandler.ListSaved)
	suggestions.Post("/save", c.SuggestionHandler.Save)
	suggestions.Delete("/saved/:id", c.SuggestionHandler.Remove)
	suggestions.Post("/hide", c.SuggestionHandler.Hide)
}

func (c *Config) GuestRoute() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		database := "connected"
		if c.DemoMode {
			database = "demo_mode"
		}
		return ctx.JSON(fiber.Map{"status": "healthy", "database": database})
	})
}
