package timesheet

import (
	"context"
	"time"
)

// TimesheetService exposes the derived timesheet figures to the HTTP layer.
type TimesheetService interface {
	// GetDayRecord computes the derived record for one employee-day.
	GetDayRecord(ctx context.Context, employeeID string, date time.Time) (DayRecordResponse, error)

	// GetMonthlyTimesheet computes the per-day calendar and summary for a month.
	GetMonthlyTimesheet(ctx context.Context, employeeID string, year int, month time.Month) (MonthlyTimesheetResponse, error)

	// GetMyMonthlyTimesheet is GetMonthlyTimesheet for the authenticated employee.
	GetMyMonthlyTimesheet(ctx context.Context, year int, month time.Month) (MonthlyTimesheetResponse, error)

	// GetOvertimeBreakdown computes request-level overtime rows and totals
	// for a period.
	GetOvertimeBreakdown(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (OvertimeBreakdownResponse, error)

	// GetLeaveBreakdown computes request-level leave rows and totals for a
	// period.
	GetLeaveBreakdown(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (LeaveBreakdownResponse, error)

	// GetContractPeriod resolves the payroll period for a month by contract
	// clipping.
	GetContractPeriod(ctx context.Context, employeeID string, year int, month time.Month) (PeriodResponse, error)
}
