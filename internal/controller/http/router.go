package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handlers interface {
	Ping(w http.ResponseWriter, r *http.Request)

	Login(w http.ResponseWriter, r *http.Request)

	GetStations(w http.ResponseWriter, r *http.Request)
	UpdateTanks(w http.ResponseWriter, r *http.Request)

	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	UpdateOrderStatus(w http.ResponseWriter, r *http.Request)
	AssignOrder(w http.ResponseWriter, r *http.Request)
	Reallocate(w http.ResponseWriter, r *http.Request)
	ScheduleBlock(w http.ResponseWriter, r *http.Request)
}

func InitRoutes(r *chi.Mux, h Handlers) *chi.Mux {
	r.Get("/ping", h.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Login)

		r.Get("/stations", h.GetStations)
		r.Post("/tanks/update", h.UpdateTanks)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.CreateOrder)
			r.Get("/", h.GetOrders)

			// статические пути раньше {folio}
			r.Post("/reallocate", h.Reallocate)
			r.Post("/schedule-block", h.ScheduleBlock)

			r.Get("/{folio}", h.GetOrder)
			r.Post("/{folio}/status", h.UpdateOrderStatus)
			r.Post("/{folio}/assign", h.AssignOrder)
		})
	})

	return r
}
