package report

import (
	"github.com/gulfhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MonthlyReportRequest struct {
	Month string `json:"month"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in MM-YYYY format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Row is one denormalized reporting line: employee + attendance aggregate +
// payroll amounts (persisted when available, recomputed otherwise).
type Row struct {
	EmpID         string          `json:"emp_id"`
	EmployeeName  string          `json:"employee_name"`
	Department    string          `json:"department"`
	WorkingDays   int             `json:"working_days"`
	DaysWorked    decimal.Decimal `json:"days_worked"`
	AbsentDays    int             `json:"absent_days"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	OTAmount      decimal.Decimal `json:"ot_amount"`
	FoodAllowance decimal.Decimal `json:"food_allowance"`
	DuesEarned    decimal.Decimal `json:"dues_earned"`
	Deductions    decimal.Decimal `json:"deductions"`
	GrossSalary   decimal.Decimal `json:"gross_salary"`
	NetSalary     decimal.Decimal `json:"net_salary"`
	Comments      string          `json:"comments,omitempty"`
}

type MonthlyReport struct {
	Month       string `json:"month"`
	GeneratedAt string `json:"generated_at"`
	Rows        []Row  `json:"rows"`
}
