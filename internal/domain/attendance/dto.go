package attendance

import (
	"github.com/gulfhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAttendanceRequest struct {
	EmpID          string           `json:"emp_id"`
	Month          string           `json:"month"`
	Department     string           `json:"department"`
	WorkingDays    int              `json:"working_days"`
	PresentDays    int              `json:"present_days"`
	AbsentDays     int              `json:"absent_days"`
	RoundOff       *decimal.Decimal `json:"round_off,omitempty"`
	OTHoursNormal  decimal.Decimal  `json:"ot_hours_normal"`
	OTHoursFriday  decimal.Decimal  `json:"ot_hours_friday"`
	OTHoursHoliday decimal.Decimal  `json:"ot_hours_holiday"`
	DuesEarned     decimal.Decimal  `json:"dues_earned"`
	Comments       string           `json:"comments"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmpID(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in MM-YYYY format"})
	}
	if r.WorkingDays < 0 || r.PresentDays < 0 || r.AbsentDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "day counts must be non-negative"})
	}
	if r.RoundOff != nil && r.RoundOff.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "round_off", Message: "must be non-negative"})
	}
	if r.OTHoursNormal.IsNegative() || r.OTHoursFriday.IsNegative() || r.OTHoursHoliday.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "ot_hours", Message: "overtime hours must be non-negative"})
	}
	if r.DuesEarned.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "dues_earned", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID             string           `json:"id"`
	EmpID          string           `json:"emp_id"`
	EmployeeName   *string          `json:"employee_name,omitempty"`
	Month          string           `json:"month"`
	Department     string           `json:"department"`
	WorkingDays    int              `json:"working_days"`
	PresentDays    int              `json:"present_days"`
	AbsentDays     int              `json:"absent_days"`
	RoundOff       *decimal.Decimal `json:"round_off,omitempty"`
	OTHoursNormal  decimal.Decimal  `json:"ot_hours_normal"`
	OTHoursFriday  decimal.Decimal  `json:"ot_hours_friday"`
	OTHoursHoliday decimal.Decimal  `json:"ot_hours_holiday"`
	DuesEarned     decimal.Decimal  `json:"dues_earned"`
	Comments       string           `json:"comments,omitempty"`
}

func ToResponse(r Record) AttendanceResponse {
	return AttendanceResponse{
		ID:             r.ID,
		EmpID:          r.EmpID,
		EmployeeName:   r.EmployeeName,
		Month:          r.Month,
		Department:     r.Department,
		WorkingDays:    r.WorkingDays,
		PresentDays:    r.PresentDays,
		AbsentDays:     r.AbsentDays,
		RoundOff:       r.RoundOff,
		OTHoursNormal:  r.OTHoursNormal,
		OTHoursFriday:  r.OTHoursFriday,
		OTHoursHoliday: r.OTHoursHoliday,
		DuesEarned:     r.DuesEarned,
		Comments:       r.Comments,
	}
}
