package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gulfhr/payroll-backend-go/internal/domain/indemnity"
	"github.com/gulfhr/payroll-backend-go/internal/handler/http/response"
)

type IndemnityHandler interface {
	Recalculate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type indemnityHandlerImpl struct {
	indemnityService indemnity.IndemnityService
}

func NewIndemnityHandler(indemnityService indemnity.IndemnityService) IndemnityHandler {
	return &indemnityHandlerImpl{indemnityService: indemnityService}
}

func (h *indemnityHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	result, err := h.indemnityService.Recalculate(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Indemnity recalculated", result)
}

func (h *indemnityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.indemnityService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *indemnityHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")

	result, err := h.indemnityService.MarkPaid(r.Context(), empID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Indemnity marked as paid", result)
}
