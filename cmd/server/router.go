package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quillhq/quill-api/internal/api/middleware"
)

// setupRouter configures the application router with all middleware and
// routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", app.authHandler.Login)
		r.Post("/auth/signup", app.authHandler.Signup)
		r.Get("/posts", app.postHandler.List)
		r.Get("/posts/{id}", app.postHandler.Get)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)

			r.Get("/users/me", app.userHandler.Me)
			r.Put("/users/me", app.userHandler.UpdateMe)

			r.Get("/posts/me", app.postHandler.Mine)
			r.Post("/posts", app.postHandler.Create)
			r.Put("/posts/{id}", app.postHandler.Update)
			r.Delete("/posts/{id}", app.postHandler.Delete)

			r.Post("/upload/image", app.uploadHandler.Image)

			// Admin-only user management
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/users", app.userHandler.Create)
				r.Get("/users", app.userHandler.List)
				r.Get("/users/{id}", app.userHandler.Get)
				r.Put("/users/{id}", app.userHandler.Update)
				r.Delete("/users/{id}", app.userHandler.Delete)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
