package indemnity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record holds the end-of-service benefit accrued by one employee. One row
// per employee; recalculation updates years and amount in place and never
// touches a Paid status.
type Record struct {
	ID              string
	EmpID           string
	YearsOfService  decimal.Decimal
	IndemnityAmount decimal.Decimal
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
	Department   *string
}

type Status string

const (
	StatusActive Status = "Active"
	StatusPaid   Status = "Paid"
)
