package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/guardbook/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Post("/token/validate", h.ValidateToken)

		r.Group(func(r chi.Router) {
			r.Use(mw.Identify)
			r.Get("/graphql", h.GraphQL)
			r.Post("/graphql", h.GraphQL)
		})

		r.Route("/guards", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/{id}/picture", h.UploadPicture)
		})
	})

	mux.With(mw.Identify).Post("/graphql", h.GraphQL)

	return mux
}
