package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/config"
	"github.com/hopee-platform/hopee-backend/internal/handlers"
	"github.com/hopee-platform/hopee-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	caseHandler *handlers.CaseHandler,
	ngoHandler *handlers.NGOHandler,
	adminHandler *handlers.AdminHandler,
	contactHandler *handlers.ContactHandler,
	uploadHandler *handlers.UploadHandler,
	uploadDir string,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	jwtProtected := middleware.JWTProtected(cfg)
	loadPrincipal := middleware.LoadPrincipal(db)

	api.Post("/auth/logout", jwtProtected, loadPrincipal, authHandler.Logout)
	api.Get("/auth/me", jwtProtected, loadPrincipal, authHandler.Me)
	api.Delete("/auth/account", jwtProtected, loadPrincipal, authHandler.DeleteAccount)

	// Cases. Creation is open to anonymous reporters; everything else needs a
	// principal.
	api.Post("/cases", middleware.OptionalPrincipal(db, cfg), caseHandler.Create)
	api.Get("/cases", jwtProtected, loadPrincipal, caseHandler.List)
	api.Get("/cases/mine", jwtProtected, loadPrincipal, caseHandler.Mine)
	api.Get("/cases/:id", jwtProtected, loadPrincipal, caseHandler.Get)
	api.Put("/cases/:id/status", jwtProtected, loadPrincipal, caseHandler.UpdateStatus)
	api.Post("/cases/:id/claim", jwtProtected, loadPrincipal, caseHandler.Claim)
	api.Delete("/cases/:id/claim", jwtProtected, loadPrincipal, caseHandler.Unclaim)

	// NGO directory and registration
	api.Get("/ngos", ngoHandler.List)
	api.Get("/ngos/:id", ngoHandler.Get)
	api.Post("/ngos", jwtProtected, loadPrincipal, ngoHandler.Register)
	api.Put("/ngos/:id", jwtProtected, loadPrincipal, ngoHandler.Update)
	api.Get("/ngo/dashboard", jwtProtected, loadPrincipal, caseHandler.Dashboard)

	// Support inbox (public create) and admin-access petitions
	api.Post("/contact", middleware.OptionalPrincipal(db, cfg), contactHandler.Create)
	api.Post("/admin-requests", jwtProtected, loadPrincipal, adminHandler.CreateRequest)
	api.Get("/admin-requests/mine", jwtProtected, loadPrincipal, adminHandler.MyRequests)

	// Case photo uploads
	api.Post("/uploads", middleware.OptionalPrincipal(db, cfg), uploadHandler.UploadPhoto)
	app.Static("/uploads", uploadDir)

	// Admin panel
	admin := api.Group("/admin", jwtProtected, loadPrincipal, middleware.AdminRequired(cfg))
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/requests", adminHandler.ListRequests)
	admin.Put("/requests/:id", adminHandler.ReviewRequest)
	admin.Put("/ngos/:id/verify", ngoHandler.Verify)
	admin.Delete("/cases/:id", caseHandler.Delete)
	admin.Get("/contact-messages", contactHandler.List)
	admin.Put("/contact-messages/:id", contactHandler.UpdateStatus)
}
