// Package userdirectory предоставляет маршруты приложения.
package userdirectory

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/user-directory/internal/http/handlers/health"
	"github.com/magabrotheeeer/user-directory/internal/http/handlers/user/create"
	"github.com/magabrotheeeer/user-directory/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/user-directory/internal/http/handlers/user/read"
	services "github.com/magabrotheeeer/user-directory/internal/services/user"
	"github.com/magabrotheeeer/user-directory/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, userService *services.UserService, db *repository.Storage) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", create.New(logger, userService).ServeHTTP)
		r.Get("/users/{id}", read.New(logger, userService).ServeHTTP)
		r.Get("/users", list.New(logger, userService).ServeHTTP)
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
