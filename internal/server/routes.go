package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hsc_predictor/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/", handler(s.getIndex))
	r.Post("/", handler(s.postIndex))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/predictions", handler(s.postV1Predictions))
		r.Get("/form", handler(s.getV1Form))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
