package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campusboard/campusboard/internal/middleware/metrics"
	"github.com/campusboard/campusboard/internal/setup"
)

func SetupRouter(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Get("/verify-email", h.VerifyEmail)
		r.Get("/threads", h.ListThreads)
		r.Get("/replies", h.ListReplies)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.NeedAuth())
			r.Get("/profile", h.GetProfile)
			r.Put("/profile", h.UpdateProfile)
			r.Post("/threads", h.CreateThread)
			r.Post("/close-thread/{id}", h.CloseThread)
			r.Delete("/delete-thread/{id}", h.DeleteThread)
			r.Post("/replies", h.CreateReply)
			r.Delete("/delete-reply/{id}", h.DeleteReply)
		})
	})

	return r
}
