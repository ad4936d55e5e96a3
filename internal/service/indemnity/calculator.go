package indemnity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kuwait labor-law indemnity accrual: half a month of salary per year for
// the first five years of service, a full month per year after that.
var (
	daysPerYear  = decimal.NewFromInt(365)
	tierBoundary = decimal.NewFromInt(5)

	halfMonth = decimal.NewFromInt(15).Div(decimal.NewFromInt(30))
)

// YearsOfService is tenure as whole days divided by a flat 365. Leap days
// are not corrected.
func YearsOfService(dateOfJoining, now time.Time) decimal.Decimal {
	days := int64(now.Sub(dateOfJoining).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return decimal.NewFromInt(days).Div(daysPerYear)
}

// Amount computes the two-tier end-of-service benefit from the contracted
// monthly basic salary.
func Amount(basicSalary, yearsOfService decimal.Decimal) decimal.Decimal {
	halfMonthly := basicSalary.Mul(halfMonth)
	if yearsOfService.LessThanOrEqual(tierBoundary) {
		return halfMonthly.Mul(yearsOfService)
	}
	beyond := yearsOfService.Sub(tierBoundary)
	return halfMonthly.Mul(tierBoundary).Add(basicSalary.Mul(beyond))
}
