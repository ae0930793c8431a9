// Package interval provides the shared time-of-day arithmetic used by the
// timesheet engine. Times of day are represented as fractional hours from
// midnight so that plain subtraction yields hours directly.
package interval

import "time"

// ClockHours converts a wall-clock time value to fractional hours from
// midnight. The date component is ignored.
func ClockHours(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}

// Clamp returns start if t < start, end if t > end, otherwise t.
func Clamp(t, start, end float64) float64 {
	if t < start {
		return start
	}
	if t > end {
		return end
	}
	return t
}

// Span returns the non-negative length of [start, end] in hours. Inverted
// intervals collapse to 0 rather than going negative.
func Span(start, end float64) float64 {
	if end <= start {
		return 0
	}
	return end - start
}

// OverlapHours returns the length of the intersection of [aStart, aEnd]
// and [bStart, bEnd] in hours, or 0 when they do not overlap.
func OverlapHours(aStart, aEnd, bStart, bEnd float64) float64 {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	return Span(lo, hi)
}
