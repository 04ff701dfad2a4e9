package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/fueldispatch/internal/model"
)

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.service.Ping(r.Context()); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, successResponse{Success: true}, http.StatusOK)
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	user, apiErr := c.service.Login(r.Context(), body)
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, loginResponse{Success: true, User: user}, http.StatusOK)
}

func (c *Controller) GetStations(w http.ResponseWriter, r *http.Request) {
	stations, apiErr := c.service.GetStations(r.Context())
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, stations, http.StatusOK)
}

func (c *Controller) UpdateTanks(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.UpdateTanksDTO](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	if apiErr := c.service.UpdateTankVolumes(r.Context(), body); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, successResponse{Success: true}, http.StatusOK)
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateOrderDTO](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	if apiErr := c.service.CreateOrder(r.Context(), body); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, successResponse{Success: true}, http.StatusOK)
}

// GetOrders - фильтры приходят в query: stations, role, blockFilter
func (c *Controller) GetOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := model.OrderFilter{
		Block:    query.Get("blockFilter"),
		Role:     query.Get("role"),
		Stations: query.Get("stations"),
	}

	orders, apiErr := c.service.GetOrders(r.Context(), filter)
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, orders, http.StatusOK)
}

func (c *Controller) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, apiErr := c.service.GetOrder(r.Context(), chi.URLParam(r, "folio"))
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, order, http.StatusOK)
}

func (c *Controller) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.UpdateStatusDTO](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	if apiErr := c.service.UpdateOrderStatus(r.Context(), chi.URLParam(r, "folio"), body); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, successResponse{Success: true}, http.StatusOK)
}

func (c *Controller) AssignOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.Assignment](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	if apiErr := c.service.AssignOrder(r.Context(), chi.URLParam(r, "folio"), body); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, successResponse{Success: true}, http.StatusOK)
}

func (c *Controller) Reallocate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ReallocateDTO](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	if apiErr := c.service.Reallocate(r.Context(), body); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, successResponse{Success: true}, http.StatusOK)
}

func (c *Controller) ScheduleBlock(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ScheduleBlockDTO](r)
	if err != nil {
		c.badRequest(w, err)
		return
	}

	count, apiErr := c.service.ScheduleBlock(r.Context(), body)
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, scheduleBlockResponse{Success: true, ProcessedCount: count}, http.StatusOK)
}

func (c *Controller) badRequest(w http.ResponseWriter, err error) {
	c.lg.Errorf("failed to parse request body: %v", err)
	writeError(w, c.lg, &model.APIError{
		Code:    http.StatusBadRequest,
		Message: model.ErrInvalidRequestMessage,
	})
}
