package timesheet

import (
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/leave"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/interval"
)

// leaveWindow is the shift window leave hours are attributed against:
// either the resolved shift detail or the fixed fallback bounds.
type leaveWindow struct {
	start      float64
	end        float64
	breakStart float64
	breakEnd   float64
	hasBreak   bool
	standard   float64
}

func (e *Engine) leaveWindowFor(inputs timesheet.Inputs, req leave.Request, date time.Time) leaveWindow {
	var detail *schedule.ShiftDetail

	// The leave request may pin its own shift; otherwise fall back to the
	// day's assignment.
	if req.WorkShiftID != nil {
		if shift := inputs.ShiftByID(*req.WorkShiftID); shift != nil {
			detail = shift.DetailFor(date)
		}
	}
	if detail == nil {
		detail = e.ResolveShift(inputs, req.EmployeeID, date)
	}

	if detail == nil {
		return leaveWindow{
			start:    e.cfg.FallbackShiftStart,
			end:      e.cfg.FallbackShiftEnd,
			standard: e.cfg.FallbackStandardHours,
		}
	}

	w := leaveWindow{
		start: interval.ClockHours(detail.StartTime),
		end:   interval.ClockHours(detail.EndTime),
	}
	w.standard = interval.Span(w.start, w.end)
	if detail.HasBreak() {
		w.hasBreak = true
		w.breakStart = interval.ClockHours(*detail.BreakStart)
		w.breakEnd = interval.ClockHours(*detail.BreakEnd)
		w.standard -= interval.Span(w.breakStart, w.breakEnd)
	}
	return w
}

// windowHours measures [from, to] clamped into the shift window with the
// break overlap removed, the same way worked hours are measured.
func (w leaveWindow) windowHours(from, to float64) float64 {
	lo := interval.Clamp(from, w.start, w.end)
	hi := interval.Clamp(to, w.start, w.end)
	hours := interval.Span(lo, hi)
	if w.hasBreak {
		hours -= interval.OverlapHours(lo, hi, w.breakStart, w.breakEnd)
	}
	if hours < 0 {
		return 0
	}
	return hours
}

// LeaveHoursForDate computes the work-hour equivalent a leave request
// contributes to one target date. Dates outside the request's span
// contribute 0; boundary days of a multi-day span contribute partial
// hours, interior days the full standard.
func (e *Engine) LeaveHoursForDate(inputs timesheet.Inputs, req leave.Request, date time.Time) float64 {
	if !req.CoversDate(date) {
		return 0
	}

	w := e.leaveWindowFor(inputs, req, date)

	firstDay := sameDay(req.StartDateTime, date)
	lastDay := sameDay(req.EndDateTime, date)

	switch {
	case firstDay && lastDay:
		return w.windowHours(interval.ClockHours(req.StartDateTime), interval.ClockHours(req.EndDateTime))
	case firstDay:
		return w.windowHours(interval.ClockHours(req.StartDateTime), w.end)
	case lastDay:
		return w.windowHours(w.start, interval.ClockHours(req.EndDateTime))
	default:
		return w.standard
	}
}

// LeaveBreakdown computes per-request leave rows and totals for a period.
// Only approved requests count, and each request's contribution is clipped
// to the days inside [periodStart, periodEnd].
func (e *Engine) LeaveBreakdown(inputs timesheet.Inputs, employeeID string, periodStart, periodEnd time.Time) timesheet.LeaveBreakdown {
	var breakdown timesheet.LeaveBreakdown

	from := dateOnly(periodStart)
	to := dateOnly(periodEnd)

	for _, req := range inputs.LeaveRequests {
		if !sameEmployee(req.EmployeeID, employeeID) || !req.Approved() {
			continue
		}

		start := dateOnly(req.StartDateTime)
		if start.Before(from) {
			start = from
		}
		end := dateOnly(req.EndDateTime)
		if end.After(to) {
			end = to
		}
		if start.After(end) {
			continue
		}

		var hours float64
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			hours += e.LeaveHoursForDate(inputs, req, d)
		}
		if hours <= 0 {
			continue
		}

		breakdown.Rows = append(breakdown.Rows, timesheet.LeaveRow{
			Request: req,
			Hours:   hours,
			Days:    round2(hours / e.cfg.WorkedDayHours),
		})
		breakdown.TotalHours += hours
	}

	breakdown.TotalDays = round2(breakdown.TotalHours / e.cfg.WorkedDayHours)
	return breakdown
}
