package http

import (
	"encoding/json"
	"net/http"

	"github.com/gulfhr/payroll-backend-go/internal/domain/attendance"
	"github.com/gulfhr/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

func (h *attendanceHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	department := r.URL.Query().Get("department")

	result, err := h.attendanceService.ListByMonth(r.Context(), month, department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
