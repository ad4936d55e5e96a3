package payroll

import (
	"github.com/gulfhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRequest struct {
	Month      string `json:"month"`
	Department string `json:"department,omitempty"` // empty = all departments
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in MM-YYYY format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateResponse struct {
	Month    string           `json:"month"`
	Created  []RecordResponse `json:"created"`
	Warnings []Warning        `json:"warnings"`
}

type UpdateRecordRequest struct {
	ID            string           `json:"-"`
	FoodAllowance *decimal.Decimal `json:"food_allowance,omitempty"`
	Deductions    *decimal.Decimal `json:"deductions,omitempty"`
	Comments      *string          `json:"comments,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FoodAllowance != nil && r.FoodAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "food_allowance", Message: "must be non-negative"})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID             string          `json:"id"`
	EmpID          string          `json:"emp_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	Department     string          `json:"department,omitempty"`
	Month          string          `json:"month"`
	BasicSalary    decimal.Decimal `json:"basic_salary"`
	OtherAllowance decimal.Decimal `json:"other_allowance"`
	OTAmount       decimal.Decimal `json:"ot_amount"`
	FoodAllowance  decimal.Decimal `json:"food_allowance"`
	DaysWorked     decimal.Decimal `json:"days_worked"`
	GrossSalary    decimal.Decimal `json:"gross_salary"`
	Deductions     decimal.Decimal `json:"deductions"`
	DuesEarned     decimal.Decimal `json:"dues_earned"`
	NetSalary      decimal.Decimal `json:"net_salary"`
	Comments       string          `json:"comments,omitempty"`
}

func ToResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:             r.ID,
		EmpID:          r.EmpID,
		Month:          r.Month,
		BasicSalary:    r.BasicSalary,
		OtherAllowance: r.OtherAllowance,
		OTAmount:       r.OTAmount,
		FoodAllowance:  r.FoodAllowance,
		DaysWorked:     r.DaysWorked,
		GrossSalary:    r.GrossSalary,
		Deductions:     r.Deductions,
		DuesEarned:     r.DuesEarned,
		NetSalary:      r.NetSalary,
		Comments:       r.Comments,
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.Department != nil {
		resp.Department = *r.Department
	}
	return resp
}

func ToResponses(records []Record) []RecordResponse {
	result := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}
