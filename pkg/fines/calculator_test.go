package fines

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	calc := NewCalculator(50)

	t.Run("Zero Days", func(t *testing.T) {
		assert.Equal(t, int64(0), calc.Amount(0))
	})

	t.Run("Negative Days", func(t *testing.T) {
		assert.Equal(t, int64(0), calc.Amount(-3))
	})

	t.Run("Proportional To Days", func(t *testing.T) {
		assert.Equal(t, int64(50), calc.Amount(1))
		assert.Equal(t, int64(250), calc.Amount(5))
		assert.Equal(t, int64(1500), calc.Amount(30))
	})
}

func TestDaysOverdue(t *testing.T) {
	due := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)

	t.Run("Returned Early", func(t *testing.T) {
		now := due.AddDate(0, 0, -2)
		assert.Equal(t, 0, DaysOverdue(now, due))
	})

	t.Run("Returned On Due Date", func(t *testing.T) {
		// Later clock time on the same date is not overdue.
		now := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, 0, DaysOverdue(now, due))
	})

	t.Run("One Day Late", func(t *testing.T) {
		// Early morning the next day already counts as a full day.
		now := time.Date(2025, 3, 11, 0, 5, 0, 0, time.UTC)
		assert.Equal(t, 1, DaysOverdue(now, due))
	})

	t.Run("Five Days Late", func(t *testing.T) {
		now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, 5, DaysOverdue(now, due))
	})
}
