package fines

import "time"

// Calculator maps an overdue duration to a monetary penalty.
// Amounts are integer cents; there is no rounding to lose.
type Calculator struct {
	DailyRateCents int64
}

// NewCalculator returns a Calculator charging dailyRateCents per overdue day.
func NewCalculator(dailyRateCents int64) Calculator {
	return Calculator{DailyRateCents: dailyRateCents}
}

// Amount returns the fine for the given number of overdue days.
// Never negative; zero when the loan was returned on or before the due date.
func (c Calculator) Amount(daysOverdue int) int64 {
	if daysOverdue <= 0 {
		return 0
	}
	return int64(daysOverdue) * c.DailyRateCents
}

// DaysOverdue returns the number of whole days now is past due, computed on
// UTC date boundaries: a loan due yesterday is one day overdue regardless of
// the time of day. Never negative.
func DaysOverdue(now, due time.Time) int {
	n := startOfDay(now)
	d := startOfDay(due)
	days := int(n.Sub(d).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// StartOfDay truncates t to midnight UTC. The overdue sweep uses it as the
// cutoff for "due before today".
func StartOfDay(t time.Time) time.Time { return startOfDay(t) }

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
