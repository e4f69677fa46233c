package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusshare/internal/blob"
	"campusshare/internal/db"
	"campusshare/internal/email"
	"campusshare/internal/handlers"
	"campusshare/internal/middleware"
	"campusshare/internal/pipeline"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, blobs *blob.Store, signer *blob.Signer, pl *pipeline.Pipeline, notifier *email.Notifier) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(database)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(database, s.Cfg)
	resourceHandler := handlers.NewResourceHandler(database, blobs, signer, pl, notifier, s.Cfg)
	fileHandler := handlers.NewFileHandler(blobs, signer)
	healthHandler := handlers.NewHealthHandler(database)

	// Auth routes
	s.App.Get("/signup", authHandler.SignupPage)
	s.App.Post("/signup", authHandler.Signup)
	s.App.Get("/login", authHandler.LoginPage)
	s.App.Post("/login", authHandler.Login)
	s.App.Get("/logout", authHandler.Logout)

	// Optional campus SSO
	if s.Cfg.IsSSOEnabled() {
		ssoHandler, err := handlers.NewSSOHandler(ctx, s.Cfg, database)
		if err != nil {
			log.Printf("Warning: Failed to initialize campus SSO: %v", err)
			log.Println("SSO login is disabled. Check the OIDC_* environment variables.")
		} else {
			s.App.Get("/auth/sso/login", ssoHandler.Login)
			s.App.Get("/auth/sso/callback", ssoHandler.Callback)
		}
	}

	// Resource routes - posting and requesting require a login
	s.App.Get("/", authMiddleware.RequireAuth, resourceHandler.Index)
	s.App.Get("/search", authMiddleware.RequireAuth, resourceHandler.Search)
	s.App.Get("/my-resources", authMiddleware.RequireAuth, resourceHandler.MyResources)
	s.App.Get("/resources/new", authMiddleware.RequireAuth, resourceHandler.New)
	s.App.Post("/resources", authMiddleware.RequireAuth, resourceHandler.Create)
	s.App.Post("/resources/:id/request", authMiddleware.RequireAuth, resourceHandler.Request)

	// Signed file downloads carry their own authorization
	s.App.Get("/files/:id", fileHandler.Download)

	// Operational endpoints
	s.App.Get("/healthz", healthHandler.Healthz)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
