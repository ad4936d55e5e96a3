package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the contract snapshot a pay run reads. The engine never
// mutates it; HR data entry owns the lifecycle.
type Employee struct {
	ID                  string
	EmpID               string
	Name                string
	Department          string
	Category            Category
	Accommodation       string
	BasicSalary         decimal.Decimal
	OtherAllowance      decimal.Decimal
	FoodAllowanceAmount decimal.Decimal
	FoodAllowanceType   FoodAllowanceType
	WorkingHoursPerDay  int

	// Per-hour overrides. Zero means "derive from hourly basic salary".
	OTRateNormal  decimal.Decimal
	OTRateFriday  decimal.Decimal
	OTRateHoliday decimal.Decimal

	DateOfJoining time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Category string

const (
	CategoryDirect   Category = "Direct"
	CategoryIndirect Category = "Indirect"
)

type FoodAllowanceType string

const (
	FoodAllowancePerDay FoodAllowanceType = "per_day"
	FoodAllowanceFixed  FoodAllowanceType = "fixed"
	FoodAllowanceNone   FoodAllowanceType = "none"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
