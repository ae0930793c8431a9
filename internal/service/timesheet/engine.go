package timesheet

import (
	"math"
	"strings"
	"time"
)

// Config tunes the engine's normalization constants. The defaults mirror
// the payroll rules of the upstream screens; the sufficiency tolerance in
// particular is a product rule, not a rounding artifact, so it is kept
// configurable instead of hard-coded.
type Config struct {
	// WorkedDayHours is the fixed divisor that normalizes hours into
	// "days". It is independent of any shift's actual length.
	WorkedDayHours float64

	// SufficiencyTolerance is subtracted from standard hours before the
	// worked-enough comparison.
	SufficiencyTolerance float64

	// FallbackStandardHours is the standard used when no shift resolves.
	FallbackStandardHours float64

	// FallbackShiftStart/End bound leave attribution on days where no
	// shift resolves, as fractional hours from midnight.
	FallbackShiftStart float64
	FallbackShiftEnd   float64
}

// DefaultConfig returns the production constants.
func DefaultConfig() Config {
	return Config{
		WorkedDayHours:        8,
		SufficiencyTolerance:  0.1,
		FallbackStandardHours: 8,
		FallbackShiftStart:    8,  // 08:00
		FallbackShiftEnd:      17, // 17:00
	}
}

// Engine computes all derived timesheet figures. It is pure: every method
// takes fully materialized inputs and returns values with no side effects,
// so identical inputs always produce identical outputs.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.WorkedDayHours <= 0 {
		cfg.WorkedDayHours = DefaultConfig().WorkedDayHours
	}
	return &Engine{cfg: cfg}
}

// round2 rounds to two decimal places, the precision of every "days"
// figure the client displays.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sameEmployee compares employee IDs as trimmed strings. Upstream systems
// disagree on numeric vs string IDs, so both sides are normalized first.
func sameEmployee(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
