package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the stand-in API router. Routes live under /api to
// match the deployed backend's base path.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/login", s.handleLogin)
		r.Post("/verify", s.handleVerify)
		r.Post("/register", s.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(newAuthMiddleware(s.store))
			r.Post("/get-user", s.handleGetUser)
			r.Post("/submit", s.handleSubmit)
		})
	})

	return r
}
