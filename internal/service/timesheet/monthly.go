package timesheet

import (
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timesheet"
)

// MonthlyTimesheet computes the per-day status calendar for a month and
// folds it into a summary. Leave and overtime totals are scoped to the
// contract-clipped payroll period, not the raw month.
func (e *Engine) MonthlyTimesheet(inputs timesheet.Inputs, employeeID string, year int, month time.Month, asOf time.Time) (timesheet.MonthlySummary, []timesheet.DayRecord) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	days := make([]timesheet.DayRecord, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		days = append(days, e.DayRecord(inputs, employeeID, date, asOf))
	}

	summary := timesheet.MonthlySummary{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Period:     e.ContractPeriod(inputs.Contracts, employeeID, year, month),
	}

	for _, rec := range days {
		switch rec.Status {
		case timesheet.DayStatusWorked:
			summary.WorkedCount++
		case timesheet.DayStatusInsufficientHours:
			summary.InsufficientHoursCount++
		case timesheet.DayStatusIncompleteTimestamp:
			summary.IncompleteTimestampCount++
		case timesheet.DayStatusOnLeave:
			summary.OnLeaveCount++
		case timesheet.DayStatusAbsentWithoutLeave:
			summary.AbsentWithoutLeaveCount++
		case timesheet.DayStatusAbsentNoSchedule:
			summary.AbsentNoScheduleCount++
		}
		summary.TotalWorkedHours += rec.WorkedHours
	}
	summary.TotalWorkedDays = round2(summary.TotalWorkedHours / e.cfg.WorkedDayHours)

	leaveBreakdown := e.LeaveBreakdown(inputs, employeeID, summary.Period.Start, summary.Period.End)
	summary.LeaveHours = leaveBreakdown.TotalHours
	summary.LeaveDays = leaveBreakdown.TotalDays

	overtimeBreakdown := e.OvertimeBreakdown(inputs, employeeID, summary.Period.Start, summary.Period.End)
	summary.OvertimeHours = overtimeBreakdown.TotalHours
	summary.OvertimeWeightedHours = overtimeBreakdown.TotalWeightedHours
	summary.OvertimeDays = overtimeBreakdown.TotalDays
	summary.OvertimeWeightedDays = overtimeBreakdown.TotalWeightedDays

	return summary, days
}
