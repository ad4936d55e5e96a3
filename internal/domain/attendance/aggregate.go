package attendance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Summary is the per-employee per-month aggregate of all attendance slices.
type Summary struct {
	WorkingDays int
	PresentDays int
	AbsentDays  int

	RoundOffTotal decimal.Decimal

	OTHoursNormal  decimal.Decimal
	OTHoursFriday  decimal.Decimal
	OTHoursHoliday decimal.Decimal

	DuesEarned decimal.Decimal
	Comments   string
}

// Summarize combines zero or more attendance records for one employee and one
// month into a single summary. Numeric fields are summed; non-empty comments
// are joined with "; ".
func Summarize(records []Record) Summary {
	s := Summary{
		RoundOffTotal:  decimal.Zero,
		OTHoursNormal:  decimal.Zero,
		OTHoursFriday:  decimal.Zero,
		OTHoursHoliday: decimal.Zero,
		DuesEarned:     decimal.Zero,
	}

	var comments []string
	for _, r := range records {
		s.WorkingDays += r.WorkingDays
		s.PresentDays += r.PresentDays
		s.AbsentDays += r.AbsentDays
		if r.RoundOff != nil {
			s.RoundOffTotal = s.RoundOffTotal.Add(*r.RoundOff)
		}
		s.OTHoursNormal = s.OTHoursNormal.Add(r.OTHoursNormal)
		s.OTHoursFriday = s.OTHoursFriday.Add(r.OTHoursFriday)
		s.OTHoursHoliday = s.OTHoursHoliday.Add(r.OTHoursHoliday)
		s.DuesEarned = s.DuesEarned.Add(r.DuesEarned)
		if !isBlank(r.Comments) {
			comments = append(comments, strings.TrimSpace(r.Comments))
		}
	}
	s.Comments = strings.Join(comments, "; ")

	return s
}

// EffectivePresentDays returns the day count every proration and eligibility
// check runs on: the round_off total when positive, raw present days otherwise.
func (s Summary) EffectivePresentDays() decimal.Decimal {
	if s.RoundOffTotal.IsPositive() {
		return s.RoundOffTotal
	}
	return decimal.NewFromInt(int64(s.PresentDays))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
