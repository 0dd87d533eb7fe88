package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, int64(50), cfg.DailyFineRateCents)
	assert.Equal(t, 2, cfg.MaxRenewals)
	assert.Equal(t, 14, cfg.DefaultLoanDays)
	assert.Equal(t, 24, cfg.SweepIntervalHours)
	assert.Equal(t, 3, cfg.ReservationHoldDays)
	assert.Equal(t, 24*time.Hour, cfg.SweepInterval())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DAILY_FINE_RATE_CENTS", "75")
	t.Setenv("MAX_RENEWALS", "1")
	t.Setenv("SWEEP_INTERVAL_HOURS", "6")

	cfg := Load()

	assert.Equal(t, int64(75), cfg.DailyFineRateCents)
	assert.Equal(t, 1, cfg.MaxRenewals)
	assert.Equal(t, 6*time.Hour, cfg.SweepInterval())
}

func TestLoadRejectsGarbage(t *testing.T) {
	t.Setenv("MAX_RENEWALS", "not-a-number")
	t.Setenv("DEFAULT_LOAN_DAYS", "-7")

	cfg := Load()

	assert.Equal(t, 2, cfg.MaxRenewals)
	assert.Equal(t, 14, cfg.DefaultLoanDays)
}
