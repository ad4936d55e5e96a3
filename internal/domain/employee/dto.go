package employee

import (
	"github.com/gulfhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmpID               string          `json:"emp_id"`
	Name                string          `json:"name"`
	Department          string          `json:"department"`
	Category            string          `json:"category"`
	Accommodation       string          `json:"accommodation"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	OtherAllowance      decimal.Decimal `json:"other_allowance"`
	FoodAllowanceAmount decimal.Decimal `json:"food_allowance_amount"`
	FoodAllowanceType   string          `json:"food_allowance_type"`
	WorkingHoursPerDay  int             `json:"working_hours_per_day"`
	OTRateNormal        decimal.Decimal `json:"ot_rate_normal"`
	OTRateFriday        decimal.Decimal `json:"ot_rate_friday"`
	OTRateHoliday       decimal.Decimal `json:"ot_rate_holiday"`
	DateOfJoining       string          `json:"date_of_joining"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmpID(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "is required and must be alphanumeric"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Category != string(CategoryDirect) && r.Category != string(CategoryIndirect) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be 'Direct' or 'Indirect'"})
	}
	if r.FoodAllowanceType != "" &&
		!validator.IsInSlice(r.FoodAllowanceType, []string{string(FoodAllowancePerDay), string(FoodAllowanceFixed), string(FoodAllowanceNone)}) {
		errs = append(errs, validator.ValidationError{Field: "food_allowance_type", Message: "must be 'per_day', 'fixed' or 'none'"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.OtherAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "other_allowance", Message: "must be non-negative"})
	}
	if r.FoodAllowanceAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "food_allowance_amount", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	EmpID               string           `json:"-"`
	Name                *string          `json:"name,omitempty"`
	Department          *string          `json:"department,omitempty"`
	Category            *string          `json:"category,omitempty"`
	Accommodation       *string          `json:"accommodation,omitempty"`
	BasicSalary         *decimal.Decimal `json:"basic_salary,omitempty"`
	OtherAllowance      *decimal.Decimal `json:"other_allowance,omitempty"`
	FoodAllowanceAmount *decimal.Decimal `json:"food_allowance_amount,omitempty"`
	FoodAllowanceType   *string          `json:"food_allowance_type,omitempty"`
	WorkingHoursPerDay  *int             `json:"working_hours_per_day,omitempty"`
	OTRateNormal        *decimal.Decimal `json:"ot_rate_normal,omitempty"`
	OTRateFriday        *decimal.Decimal `json:"ot_rate_friday,omitempty"`
	OTRateHoliday       *decimal.Decimal `json:"ot_rate_holiday,omitempty"`
	Status              *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Category != nil && *r.Category != string(CategoryDirect) && *r.Category != string(CategoryIndirect) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be 'Direct' or 'Indirect'"})
	}
	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	EmpID               string          `json:"emp_id"`
	Name                string          `json:"name"`
	Department          string          `json:"department"`
	Category            string          `json:"category"`
	Accommodation       string          `json:"accommodation"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	OtherAllowance      decimal.Decimal `json:"other_allowance"`
	FoodAllowanceAmount decimal.Decimal `json:"food_allowance_amount"`
	FoodAllowanceType   string          `json:"food_allowance_type"`
	WorkingHoursPerDay  int             `json:"working_hours_per_day"`
	OTRateNormal        decimal.Decimal `json:"ot_rate_normal"`
	OTRateFriday        decimal.Decimal `json:"ot_rate_friday"`
	OTRateHoliday       decimal.Decimal `json:"ot_rate_holiday"`
	DateOfJoining       string          `json:"date_of_joining"`
	Status              string          `json:"status"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmpID:               e.EmpID,
		Name:                e.Name,
		Department:          e.Department,
		Category:            string(e.Category),
		Accommodation:       e.Accommodation,
		BasicSalary:         e.BasicSalary,
		OtherAllowance:      e.OtherAllowance,
		FoodAllowanceAmount: e.FoodAllowanceAmount,
		FoodAllowanceType:   string(e.FoodAllowanceType),
		WorkingHoursPerDay:  e.WorkingHoursPerDay,
		OTRateNormal:        e.OTRateNormal,
		OTRateFriday:        e.OTRateFriday,
		OTRateHoliday:       e.OTRateHoliday,
		DateOfJoining:       e.DateOfJoining.Format("2006-01-02"),
		Status:              string(e.Status),
	}
}
