package api

import (
	"net/http"
	"strings"

	"github.com/alcanciapp/alcanciapp-be/internal/api/handlers"
	"github.com/alcanciapp/alcanciapp-be/internal/auth"
	"github.com/alcanciapp/alcanciapp-be/internal/config"
	"github.com/alcanciapp/alcanciapp-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(cfg *config.Config, sessionService services.SessionServiceProvider, goalService services.GoalServiceProvider, transactionService services.TransactionServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			// Local frontends always pass; production is pinned to the
			// configured origin unless it is the wildcard.
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			return cfg.CORSOrigin == "*" || origin == cfg.CORSOrigin
		},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         86400,
	}))

	// Initialize handlers
	systemHandler := handlers.NewSystemHandler()
	authHandler := handlers.NewAuthHandler(sessionService)
	goalHandler := handlers.NewGoalHandler(goalService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	r.Get("/", systemHandler.Root)
	r.Get("/health", systemHandler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/anonymous", authHandler.Anonymous)

		// Every resource route runs behind bearer authentication.
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(sessionService))

			r.Route("/goals", func(r chi.Router) {
				r.Get("/", goalHandler.GetAll)
				r.Post("/", goalHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", goalHandler.Get)
					r.Delete("/", goalHandler.Delete)
					r.Get("/transactions", transactionHandler.GetAll)
					r.Post("/transactions", transactionHandler.Create)
				})
			})

			r.Delete("/transactions/{id}", transactionHandler.Delete)
		})

		// Operator surface only exists when a password hash is configured.
		if cfg.AdminPasswordHash != "" {
			adminHandler := handlers.NewAdminHandler(sessionService, cfg.AdminPasswordHash)
			r.Route("/admin", func(r chi.Router) {
				r.Use(adminHandler.BasicAuth)
				r.Post("/sessions/prune", adminHandler.PruneSessions)
				r.Get("/sessions/stats", adminHandler.SessionStats)
			})
		}
	})

	return r
}
