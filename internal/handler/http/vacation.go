package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/vacation"
	"github.com/fichaje-hq/fichaje-backend-go/internal/handler/http/response"
)

type VacationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService vacation.Service
}

func NewVacationHandler(vacationService vacation.Service) VacationHandler {
	return &vacationHandlerImpl{
		vacationService: vacationService,
	}
}

func (h *vacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.vacationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation request created successfully", result)
}

func (h *vacationHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.vacationService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *vacationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		ReviewedBy string `json:"reviewed_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.vacationService.Approve(r.Context(), id, body.ReviewedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request approved", result)
}

func (h *vacationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		ReviewedBy string `json:"reviewed_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.vacationService.Reject(r.Context(), id, body.ReviewedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request rejected", result)
}
