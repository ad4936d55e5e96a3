package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSummarize_SumsDepartmentSlices(t *testing.T) {
	records := []Record{
		{
			EmpID: "E-1", Month: "03-2025",
			WorkingDays: 13, PresentDays: 12, AbsentDays: 1,
			OTHoursNormal: dec("4"), OTHoursFriday: dec("2"), OTHoursHoliday: dec("0"),
			DuesEarned: dec("10"), Comments: "first half",
		},
		{
			EmpID: "E-1", Month: "03-2025",
			WorkingDays: 13, PresentDays: 13, AbsentDays: 0,
			OTHoursNormal: dec("3"), OTHoursFriday: dec("0"), OTHoursHoliday: dec("8"),
			DuesEarned: dec("5.500"), Comments: "second half",
		},
	}

	s := Summarize(records)

	assert.Equal(t, 26, s.WorkingDays)
	assert.Equal(t, 25, s.PresentDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.True(t, s.OTHoursNormal.Equal(dec("7")))
	assert.True(t, s.OTHoursFriday.Equal(dec("2")))
	assert.True(t, s.OTHoursHoliday.Equal(dec("8")))
	assert.True(t, s.DuesEarned.Equal(dec("15.500")))
	assert.Equal(t, "first half; second half", s.Comments)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.WorkingDays)
	assert.True(t, s.EffectivePresentDays().IsZero())
	assert.Equal(t, "", s.Comments)
}

func TestSummarize_SkipsBlankComments(t *testing.T) {
	records := []Record{
		{PresentDays: 10, Comments: "  "},
		{PresentDays: 10, Comments: "late arrivals"},
		{PresentDays: 2, Comments: ""},
	}
	s := Summarize(records)
	assert.Equal(t, "late arrivals", s.Comments)
}

func TestEffectivePresentDays_RoundOffOverrides(t *testing.T) {
	ro := dec("22")
	s := Summarize([]Record{{PresentDays: 20, RoundOff: &ro}})
	assert.True(t, s.EffectivePresentDays().Equal(dec("22")))
}

func TestEffectivePresentDays_ZeroRoundOffIgnored(t *testing.T) {
	ro := decimal.Zero
	s := Summarize([]Record{{PresentDays: 20, RoundOff: &ro}})
	assert.True(t, s.EffectivePresentDays().Equal(dec("20")))
}

func TestEffectivePresentDays_RoundOffSummedAcrossSlices(t *testing.T) {
	a := dec("11.5")
	b := dec("12")
	s := Summarize([]Record{
		{PresentDays: 11, RoundOff: &a},
		{PresentDays: 11, RoundOff: &b},
	})
	assert.True(t, s.EffectivePresentDays().Equal(dec("23.5")))
}
