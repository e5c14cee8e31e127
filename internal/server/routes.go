package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lead_qualifier/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/leads", func(r chi.Router) {
				r.Get("/", handler(s.getV1Leads))
				r.Get("/options", handler(s.getV1LeadsOptions))
				r.Post("/query", handler(s.postV1LeadsQuery))
				r.Get("/export", handler(s.postV1LeadsExport))
				r.Post("/export", handler(s.postV1LeadsExport))
				r.Get("/charts/{kind}", handler(s.postV1LeadsChart))
				r.Post("/charts/{kind}", handler(s.postV1LeadsChart))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
