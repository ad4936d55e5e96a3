package http

import (
	"net/http"

	"github.com/gulfhr/payroll-backend-go/internal/domain/leave"
	"github.com/gulfhr/payroll-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListByMonth(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func (h *leaveHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.leaveService.ListByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
