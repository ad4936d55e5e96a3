package payroll

import (
	"strings"

	"github.com/gulfhr/payroll-backend-go/internal/domain/attendance"
	"github.com/gulfhr/payroll-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Kuwait labor-law policy constants. StandardMonthDays is the mandated
// working-day month used for proration and hourly rates; it is always 26,
// never the calendar month length and never the attendance working_days
// figure.
var (
	StandardMonthDays = decimal.NewFromInt(26)

	otMultiplierNormal  = decimal.NewFromFloat(1.25)
	otMultiplierFriday  = decimal.NewFromFloat(1.50)
	otMultiplierHoliday = decimal.NewFromInt(2)

	// Overtime reduction for Rehab-department Indirect staff.
	rehabIndirectFactor = decimal.NewFromFloat(0.70)
)

const defaultWorkingHoursPerDay = 8

// Prorate scales a monthly amount by effective present days, capped at the
// full contracted amount. Employees are monthly-salaried: a 31-day month must
// never pay more than the contracted figure, a short month pays linearly.
func Prorate(amount, effectiveDays decimal.Decimal) decimal.Decimal {
	if effectiveDays.GreaterThanOrEqual(StandardMonthDays) {
		return amount
	}
	return amount.Div(StandardMonthDays).Mul(effectiveDays)
}

// HourlyBasicSalary derives the hourly wage from the contracted monthly
// salary: basic / (26 * hours per day). Non-positive hours fall back to the
// 8-hour default.
func HourlyBasicSalary(basicSalary decimal.Decimal, workingHoursPerDay int) decimal.Decimal {
	if workingHoursPerDay <= 0 {
		workingHoursPerDay = defaultWorkingHoursPerDay
	}
	return basicSalary.Div(StandardMonthDays.Mul(decimal.NewFromInt(int64(workingHoursPerDay))))
}

// OvertimeRates are the three per-hour overtime rates in effect for one
// employee.
type OvertimeRates struct {
	Normal  decimal.Decimal
	Friday  decimal.Decimal
	Holiday decimal.Decimal
}

// RatesFor derives overtime rates from the hourly basic salary. A nonzero
// per-employee override replaces the derived rate entirely.
func RatesFor(emp employee.Employee) OvertimeRates {
	hbs := HourlyBasicSalary(emp.BasicSalary, emp.WorkingHoursPerDay)

	rates := OvertimeRates{
		Normal:  hbs.Mul(otMultiplierNormal),
		Friday:  hbs.Mul(otMultiplierFriday),
		Holiday: hbs.Mul(otMultiplierHoliday),
	}
	if !emp.OTRateNormal.IsZero() {
		rates.Normal = emp.OTRateNormal
	}
	if !emp.OTRateFriday.IsZero() {
		rates.Friday = emp.OTRateFriday
	}
	if !emp.OTRateHoliday.IsZero() {
		rates.Holiday = emp.OTRateHoliday
	}
	return rates
}

// OvertimePay totals hours x rate across the three overtime categories. For
// Rehab-department Indirect employees the total is reduced to 70% after the
// per-category pay is computed; the hourly rates themselves are untouched.
func OvertimePay(emp employee.Employee, rates OvertimeRates, s attendance.Summary) decimal.Decimal {
	pay := s.OTHoursNormal.Mul(rates.Normal).
		Add(s.OTHoursFriday.Mul(rates.Friday)).
		Add(s.OTHoursHoliday.Mul(rates.Holiday))

	if isRehabIndirect(emp) {
		pay = pay.Mul(rehabIndirectFactor)
	}
	return pay
}

func isRehabIndirect(emp employee.Employee) bool {
	return strings.EqualFold(strings.TrimSpace(emp.Department), "rehab") &&
		strings.EqualFold(string(emp.Category), string(employee.CategoryIndirect))
}

// FoodAllowance pays only when the employee is Indirect AND houses themselves
// (accommodation contains "own"). Everything else is exactly zero; there is
// no partial payment. An eligible per-day allowance prorates like basic
// salary; a fixed allowance pays in full.
func FoodAllowance(emp employee.Employee, effectiveDays decimal.Decimal) decimal.Decimal {
	if !strings.EqualFold(string(emp.Category), string(employee.CategoryIndirect)) {
		return decimal.Zero
	}
	if !strings.Contains(strings.ToLower(strings.TrimSpace(emp.Accommodation)), "own") {
		return decimal.Zero
	}
	if !emp.FoodAllowanceAmount.IsPositive() || emp.FoodAllowanceType == employee.FoodAllowanceNone {
		return decimal.Zero
	}
	if emp.FoodAllowanceType == employee.FoodAllowanceFixed {
		return emp.FoodAllowanceAmount
	}
	return Prorate(emp.FoodAllowanceAmount, effectiveDays)
}

var pointFive = decimal.NewFromFloat(0.5)

// RoundNet applies the legally mandated rounding to the raw net salary:
// half rounds up, for negative nets too (a net of -450.5 becomes -450,
// not -451).
func RoundNet(net decimal.Decimal) decimal.Decimal {
	return net.Add(pointFive).Floor()
}
