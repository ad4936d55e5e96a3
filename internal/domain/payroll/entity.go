package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one generated payroll row, persisted for audit and post-hoc
// editing. BasicSalary and OtherAllowance hold the prorated amounts actually
// paid, not the contracted monthly figures.
type Record struct {
	ID    string
	EmpID string
	Month string // MM-YYYY

	BasicSalary    decimal.Decimal
	OtherAllowance decimal.Decimal
	OTAmount       decimal.Decimal
	FoodAllowance  decimal.Decimal

	// DaysWorked is the effective present-day count the proration ran on.
	// Fractional when a round_off adjustment was applied.
	DaysWorked decimal.Decimal

	GrossSalary decimal.Decimal
	Deductions  decimal.Decimal
	DuesEarned  decimal.Decimal
	NetSalary   decimal.Decimal

	Comments string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	Department   *string
}

// Warning names an employee excluded from a generation run and why.
type Warning struct {
	EmpID  string `json:"emp_id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
