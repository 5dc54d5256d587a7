package penalty

import (
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// ElapsedDays counts calendar days from start to now in now's location.
func ElapsedDays(start, now time.Time) int {
	s := start.In(now.Location())
	sy, sm, sd := s.Date()
	ny, nm, nd := now.Date()
	from := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / day)
}

// OverdueFine is max(0, elapsed-allowed) * rate, rounded to cents.
func OverdueFine(elapsedDays, allowedDays int, dailyRate decimal.Decimal) decimal.Decimal {
	over := elapsedDays - allowedDays
	if over <= 0 || dailyRate.IsNegative() {
		return decimal.Zero
	}
	return dailyRate.Mul(decimal.NewFromInt(int64(over))).Round(2)
}
