package indemnity

import (
	"testing"
	"time"

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

func TestYearsOfService(t *testing.T) {
	joined := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	// flat 365-day divisor, no leap-year adjustment
	now := joined.AddDate(0, 0, 365*3)
	assert.True(t, YearsOfService(joined, now).Equal(dec("3")))

	now = joined.AddDate(0, 0, 730)
	assert.True(t, YearsOfService(joined, now).Equal(dec("2")))

	// half a year
	now = joined.AddDate(0, 0, 182)
	got := YearsOfService(joined, now)
	assert.True(t, got.Equal(dec("182").Div(dec("365"))))
}

func TestYearsOfService_FutureJoiningClampsToZero(t *testing.T) {
	joined := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, YearsOfService(joined, now).IsZero())
}

func TestAmount_FirstTier(t *testing.T) {
	// (600 * 15/30) * 3 = 900
	got := Amount(dec("600"), dec("3"))
	assert.True(t, got.Equal(dec("900")), "got %s", got)
}

func TestAmount_ExactlyFiveYears(t *testing.T) {
	// boundary stays in the first tier: (600 * 0.5) * 5 = 1500
	got := Amount(dec("600"), dec("5"))
	assert.True(t, got.Equal(dec("1500")))
}

func TestAmount_SecondTier(t *testing.T) {
	// (600*0.5)*5 + (600*1.0)*3 = 1500 + 1800 = 3300
	got := Amount(dec("600"), dec("8"))
	assert.True(t, got.Equal(dec("3300")), "got %s", got)
}

func TestAmount_FractionalYears(t *testing.T) {
	// (400*0.5)*2.5 = 500
	got := Amount(dec("400"), dec("2.5"))
	assert.True(t, got.Equal(dec("500")))

	// (400*0.5)*5 + 400*1.5 = 1000 + 600 = 1600
	got = Amount(dec("400"), dec("6.5"))
	assert.True(t, got.Equal(dec("1600")))
}

func TestAmount_ZeroYears(t *testing.T) {
	assert.True(t, Amount(dec("600"), decimal.Zero).IsZero())
}
