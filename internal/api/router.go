package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)

			r.Route("/cheques", func(r chi.Router) {
				r.Post("/", h.CreateCheque)
				r.Get("/{id}", h.Cheque)
				r.Patch("/{id}", h.UpdateCheque)
				r.Get("/{id}/history", h.ChequeHistory)
				r.Post("/{id}/cancel", h.CancelCheque)
			})

			r.Get("/invoices/{id}", h.Invoice)
			r.Get("/stats", h.Stats)
		})
	})

	return mux
}
