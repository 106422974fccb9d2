package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/guestwall/guestwall-backend/internal/config"
	"github.com/guestwall/guestwall-backend/internal/handlers"
	"github.com/guestwall/guestwall-backend/internal/middleware"
	"github.com/guestwall/guestwall-backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	gate *services.SessionService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	messageHandler *handlers.MessageHandler,
	moderationHandler *handlers.ModerationHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public contributor flow, rate limited harder than reads
	messages := api.Group("/messages")
	messages.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	messages.Post("/", messageHandler.Create)
	messages.Post("/:id/media", messageHandler.AddMedia)

	// Auth — login is rate limited, verify/logout are not (the UI guard
	// calls verify on every navigation)
	auth := api.Group("/auth")
	auth.Post("/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)
	auth.Get("/verify", authHandler.Verify)
	auth.Post("/logout", authHandler.Logout)

	// Admin moderation panel — every route passes the session gate
	admin := api.Group("/admin", middleware.AdminRequired(gate, cfg))
	admin.Get("/messages", moderationHandler.ListMessages)
	admin.Patch("/messages/:id", moderationHandler.Decide)
	admin.Get("/stats", moderationHandler.Stats)
}
