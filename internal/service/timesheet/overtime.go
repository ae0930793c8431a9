package timesheet

import (
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timesheet"
)

// OvertimeBreakdown computes per-request overtime rows and period totals.
// Only approved requests count. Each request's span is clipped to
// [periodStart, periodEnd] before measuring; requests entirely outside the
// period contribute nothing. Overtime hours are pure clock-time spans with
// no break deduction.
func (e *Engine) OvertimeBreakdown(inputs timesheet.Inputs, employeeID string, periodStart, periodEnd time.Time) timesheet.OvertimeBreakdown {
	var breakdown timesheet.OvertimeBreakdown

	from := dateOnly(periodStart)
	to := endOfDay(periodEnd)

	for _, req := range inputs.OvertimeRequests {
		if !sameEmployee(req.EmployeeID, employeeID) || !req.Approved() {
			continue
		}

		start := req.StartDateTime
		if start.Before(from) {
			start = from
		}
		end := req.EndDateTime
		if end.After(to) {
			end = to
		}

		hours := end.Sub(start).Hours()
		if hours <= 0 {
			continue
		}

		coefficient := req.EffectiveCoefficient()
		weighted := hours * coefficient

		breakdown.Rows = append(breakdown.Rows, timesheet.OvertimeRow{
			Request:       req,
			Category:      req.Classify(),
			Hours:         hours,
			WeightedHours: weighted,
			Days:          round2(hours / e.cfg.WorkedDayHours),
			WeightedDays:  round2(weighted / e.cfg.WorkedDayHours),
		})
		breakdown.TotalHours += hours
		breakdown.TotalWeightedHours += weighted
	}

	breakdown.TotalDays = round2(breakdown.TotalHours / e.cfg.WorkedDayHours)
	breakdown.TotalWeightedDays = round2(breakdown.TotalWeightedHours / e.cfg.WorkedDayHours)
	return breakdown
}
