package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one uploaded attendance slice for an employee in a pay month.
// Several records may exist per (emp_id, month) pair when attendance is
// entered per department; the aggregator sums them.
type Record struct {
	ID         string
	EmpID      string
	Month      string // MM-YYYY
	Department string

	WorkingDays int
	PresentDays int
	AbsentDays  int

	// RoundOff is an adjusted present-day count. When set and > 0 it
	// overrides PresentDays in every downstream calculation.
	RoundOff *decimal.Decimal

	OTHoursNormal  decimal.Decimal
	OTHoursFriday  decimal.Decimal
	OTHoursHoliday decimal.Decimal

	DuesEarned decimal.Decimal
	Comments   string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}
