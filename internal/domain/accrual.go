package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const accrualDay = 24 * time.Hour

// AccrualResult is the outcome of running the accrual computation for a
// single position at a given instant.
type AccrualResult struct {
	NewAccruedReturn decimal.Decimal
	DaysProcessed    int
	IsComplete       bool
}

// ComputeAccrual derives the accrued return of a position at the instant now.
// It is a pure function: no clock reads, no I/O, so passing the same position
// and the same now always yields the same result. Calling it twice within the
// same day is a no-op, which is what makes the read-path and batch triggers
// safe to run arbitrarily often.
//
// Missed days are credited all at once, capped so that no day past maturity is
// ever paid; the accrued return is additionally hard-capped at the expected
// return so day-count drift can never overpay. When the position has reached
// maturity the accrued return snaps to exactly the expected return.
func ComputeAccrual(p *Position, now time.Time) AccrualResult {
	isComplete := !now.Before(p.MaturityTime)

	daysSinceAccrual := daysBetween(p.LastAccrualTime, now)
	if daysSinceAccrual <= 0 && !isComplete {
		return AccrualResult{
			NewAccruedReturn: p.AccruedReturn,
			DaysProcessed:    0,
			IsComplete:       false,
		}
	}

	daysUntilMaturity := daysBetween(now, p.MaturityTime)
	daysToApply := daysSinceAccrual
	if remaining := daysUntilMaturity + 1; remaining < daysToApply {
		daysToApply = remaining
	}
	if daysToApply < 0 {
		daysToApply = 0
	}

	if isComplete {
		return AccrualResult{
			NewAccruedReturn: p.ExpectedReturn,
			DaysProcessed:    daysToApply,
			IsComplete:       true,
		}
	}

	accrued := p.AccruedReturn.Add(p.DailyReturn.Mul(decimal.NewFromInt(int64(daysToApply))))
	if accrued.GreaterThan(p.ExpectedReturn) {
		accrued = p.ExpectedReturn
	}
	return AccrualResult{
		NewAccruedReturn: accrued,
		DaysProcessed:    daysToApply,
		IsComplete:       false,
	}
}

// daysBetween counts whole days from one instant to another, rounding toward
// negative infinity so a partial day never counts.
func daysBetween(from, to time.Time) int {
	d := to.Sub(from)
	days := d / accrualDay
	if d < 0 && d%accrualDay != 0 {
		days--
	}
	return int(days)
}
