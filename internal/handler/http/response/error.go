package response

import (
	"errors"
	"net/http"

	"github.com/gulfhr/payroll-backend-go/internal/domain/attendance"
	"github.com/gulfhr/payroll-backend-go/internal/domain/employee"
	"github.com/gulfhr/payroll-backend-go/internal/domain/indemnity"
	"github.com/gulfhr/payroll-backend-go/internal/domain/leave"
	"github.com/gulfhr/payroll-backend-go/internal/domain/payroll"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmpIDExists):
		Conflict(w, "Employee ID already exists")

	// Attendance and leave domain errors
	case errors.Is(err, attendance.ErrInvalidMonth), errors.Is(err, leave.ErrInvalidMonth):
		BadRequest(w, "Month must be in MM-YYYY format", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be in MM-YYYY format", nil)
	case errors.Is(err, payroll.ErrNothingToGenerate):
		BadRequest(w, "No attendance data for the requested month", nil)

	// Indemnity domain errors
	case errors.Is(err, indemnity.ErrIndemnityNotFound):
		NotFound(w, "Indemnity record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
