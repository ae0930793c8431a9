package timesheet

import (
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/contract"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timesheet"
)

// ContractPeriod clips the target month to the window during which the
// employee had an approved contract. The first approved contract (in input
// order) intersecting the month wins; overlapping contracts are not
// merged. With no matching contract the full calendar month is returned —
// a fallback, not an error.
func (e *Engine) ContractPeriod(contracts []contract.Contract, employeeID string, year int, month time.Month) timesheet.Period {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	for _, c := range contracts {
		if !sameEmployee(c.EmployeeID, employeeID) || !c.Approved() {
			continue
		}

		effectiveEnd := dateOnly(c.EffectiveEnd(monthEnd))
		start := dateOnly(c.StartDate)
		if start.After(monthEnd) || effectiveEnd.Before(monthStart) {
			continue
		}

		period := timesheet.Period{Start: monthStart, End: monthEnd}
		if start.After(monthStart) {
			period.Start = start
		}
		if effectiveEnd.Before(monthEnd) {
			period.End = effectiveEnd
		}
		return period
	}

	return timesheet.Period{Start: monthStart, End: monthEnd}
}
