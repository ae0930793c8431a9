package timesheet

import (
	"math"
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/interval"
)

// DayPunches reduces an employee's scan events for one day into a punch
// pair: earliest check-in-like scan in, latest check-out-like scan out.
// Events with an unknown scan type or a zero scan time are skipped.
func (e *Engine) DayPunches(events []timeclock.ScanEvent, employeeID string, date time.Time) timeclock.DayPunchPair {
	pair := timeclock.DayPunchPair{
		EmployeeID: employeeID,
		WorkDate:   dateOnly(date),
	}

	for _, ev := range events {
		if !sameEmployee(ev.EmployeeID, employeeID) || !sameDay(ev.WorkDate, date) {
			continue
		}
		if ev.ScanTime.IsZero() {
			continue
		}
		switch ev.Kind() {
		case timeclock.ScanKindCheckIn:
			if pair.CheckIn == nil || ev.ScanTime.Before(*pair.CheckIn) {
				t := ev.ScanTime
				pair.CheckIn = &t
			}
		case timeclock.ScanKindCheckOut:
			if pair.CheckOut == nil || ev.ScanTime.After(*pair.CheckOut) {
				t := ev.ScanTime
				pair.CheckOut = &t
			}
		}
	}

	return pair
}

// ResolveShift finds the shift detail applying to one employee-day: the
// day's assignment is looked up first, then the assigned shift's weekday
// window. Returns nil when nothing is scheduled.
func (e *Engine) ResolveShift(inputs timesheet.Inputs, employeeID string, date time.Time) *schedule.ShiftDetail {
	for _, a := range inputs.ShiftAssignments {
		if !sameEmployee(a.EmployeeID, employeeID) || !sameDay(a.WorkDate, date) {
			continue
		}
		shift := inputs.ShiftByID(a.WorkShiftID)
		if shift == nil {
			continue
		}
		return shift.DetailFor(date)
	}
	return nil
}

// HasAssignment reports whether the employee has any shift assignment on
// the date, regardless of whether its weekday window is configured.
func (e *Engine) HasAssignment(inputs timesheet.Inputs, employeeID string, date time.Time) bool {
	for _, a := range inputs.ShiftAssignments {
		if sameEmployee(a.EmployeeID, employeeID) && sameDay(a.WorkDate, date) {
			return true
		}
	}
	return false
}

// workTime computes worked hours, standard hours, lateness and earliness
// for a complete punch pair against an optional shift window.
func (e *Engine) workTime(pair timeclock.DayPunchPair, detail *schedule.ShiftDetail) timesheet.DayRecord {
	rec := timesheet.DayRecord{Date: pair.WorkDate}

	in := interval.ClockHours(*pair.CheckIn)
	out := interval.ClockHours(*pair.CheckOut)

	if detail == nil {
		// No schedule: raw span, fixed standard, no break deduction and
		// no lateness concept.
		rec.WorkedHours = interval.Span(in, out)
		rec.StandardHours = e.cfg.FallbackStandardHours
	} else {
		start := interval.ClockHours(detail.StartTime)
		end := interval.ClockHours(detail.EndTime)

		effIn := interval.Clamp(in, start, end)
		effOut := interval.Clamp(out, start, end)
		worked := interval.Span(effIn, effOut)

		standard := interval.Span(start, end)
		if detail.HasBreak() {
			breakStart := interval.ClockHours(*detail.BreakStart)
			breakEnd := interval.ClockHours(*detail.BreakEnd)
			worked -= interval.OverlapHours(effIn, effOut, breakStart, breakEnd)
			standard -= interval.Span(breakStart, breakEnd)
		}
		if worked < 0 {
			worked = 0
		}

		rec.WorkedHours = worked
		rec.StandardHours = standard
		// Lateness and earliness are judged against the raw punches, not
		// the clamped ones.
		rec.LateMinutes = positiveMinutes(in - start)
		rec.EarlyMinutes = positiveMinutes(end - out)
	}

	rec.WorkedDays = round2(rec.WorkedHours / e.cfg.WorkedDayHours)

	if rec.WorkedHours >= rec.StandardHours-e.cfg.SufficiencyTolerance &&
		rec.LateMinutes == 0 && rec.EarlyMinutes == 0 {
		rec.Status = timesheet.DayStatusWorked
	} else {
		rec.Status = timesheet.DayStatusInsufficientHours
	}

	return rec
}

func positiveMinutes(hours float64) int {
	m := int(math.Round(hours * 60))
	if m < 0 {
		return 0
	}
	return m
}

// DayRecord computes the derived record for one employee-day. asOf is the
// cutoff for counting a scheduled-but-unpunched day as an unexcused
// absence; future days are never counted against the employee.
func (e *Engine) DayRecord(inputs timesheet.Inputs, employeeID string, date, asOf time.Time) timesheet.DayRecord {
	detail := e.ResolveShift(inputs, employeeID, date)

	rec := timesheet.DayRecord{
		Date:          dateOnly(date),
		StandardHours: e.cfg.FallbackStandardHours,
	}
	if detail != nil {
		standard := interval.Span(interval.ClockHours(detail.StartTime), interval.ClockHours(detail.EndTime))
		if detail.HasBreak() {
			standard -= interval.Span(interval.ClockHours(*detail.BreakStart), interval.ClockHours(*detail.BreakEnd))
		}
		rec.StandardHours = standard
	}

	for _, lr := range inputs.LeaveRequests {
		if sameEmployee(lr.EmployeeID, employeeID) && lr.Approved() && lr.CoversDate(date) {
			rec.Status = timesheet.DayStatusOnLeave
			return rec
		}
	}

	pair := e.DayPunches(inputs.ScanEvents, employeeID, date)
	switch {
	case pair.Complete():
		return e.workTime(pair, detail)
	case !pair.Empty():
		rec.Status = timesheet.DayStatusIncompleteTimestamp
		return rec
	}

	if e.HasAssignment(inputs, employeeID, date) && !dateOnly(date).After(dateOnly(asOf)) {
		rec.Status = timesheet.DayStatusAbsentWithoutLeave
		return rec
	}

	rec.Status = timesheet.DayStatusAbsentNoSchedule
	return rec
}
