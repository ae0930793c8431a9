package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/leave"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/overtime"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timesheet"
)

// marchInputs covers one status of each kind in March 2026:
// the 2nd worked in full, the 3rd arrived late, the 4th forgot to clock
// out, the 5th was on approved leave and the 6th did not show up.
func marchInputs() timesheet.Inputs {
	inputs := officeInputs(
		date(2026, time.March, 2),
		date(2026, time.March, 3),
		date(2026, time.March, 4),
		date(2026, time.March, 5),
		date(2026, time.March, 6),
	)

	inputs.ScanEvents = []timeclock.ScanEvent{
		scan(testEmployeeID, date(2026, time.March, 2), 8, 0, "checkin"),
		scan(testEmployeeID, date(2026, time.March, 2), 17, 0, "checkout"),
		scan(testEmployeeID, date(2026, time.March, 3), 8, 45, "checkin"),
		scan(testEmployeeID, date(2026, time.March, 3), 17, 0, "checkout"),
		scan(testEmployeeID, date(2026, time.March, 4), 8, 0, "checkin"),
	}
	inputs.LeaveRequests = []leave.Request{
		pinnedLeave("leave-1", at(date(2026, time.March, 5), 8, 0), at(date(2026, time.March, 5), 17, 0), "shift-office"),
	}
	inputs.OvertimeRequests = []overtime.Request{
		overtimeRequest("ot-1", at(date(2026, time.March, 2), 18, 0), at(date(2026, time.March, 2), 21, 0), 1.5),
	}
	return inputs
}

func TestMonthlyTimesheet(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	asOf := date(2026, time.March, 31)

	summary, days := engine.MonthlyTimesheet(marchInputs(), testEmployeeID, 2026, time.March, asOf)

	require.Len(t, days, 31)
	assert.Equal(t, timesheet.DayStatusWorked, days[1].Status)
	assert.Equal(t, timesheet.DayStatusInsufficientHours, days[2].Status)
	assert.Equal(t, timesheet.DayStatusIncompleteTimestamp, days[3].Status)
	assert.Equal(t, timesheet.DayStatusOnLeave, days[4].Status)
	assert.Equal(t, timesheet.DayStatusAbsentWithoutLeave, days[5].Status)
	assert.Equal(t, timesheet.DayStatusAbsentNoSchedule, days[6].Status)

	assert.Equal(t, 1, summary.WorkedCount)
	assert.Equal(t, 1, summary.InsufficientHoursCount)
	assert.Equal(t, 1, summary.IncompleteTimestampCount)
	assert.Equal(t, 1, summary.OnLeaveCount)
	assert.Equal(t, 1, summary.AbsentWithoutLeaveCount)
	assert.Equal(t, 26, summary.AbsentNoScheduleCount)

	assert.InDelta(t, 15.25, summary.TotalWorkedHours, 1e-9)
	assert.InDelta(t, 1.91, summary.TotalWorkedDays, 1e-9)

	assert.InDelta(t, 8.0, summary.LeaveHours, 1e-9)
	assert.InDelta(t, 1.0, summary.LeaveDays, 1e-9)

	assert.InDelta(t, 3.0, summary.OvertimeHours, 1e-9)
	assert.InDelta(t, 4.5, summary.OvertimeWeightedHours, 1e-9)

	// No contract on file, so the period is the whole calendar month.
	assert.Equal(t, date(2026, time.March, 1), summary.Period.Start)
	assert.Equal(t, date(2026, time.March, 31), summary.Period.End)
}

func TestMonthlyTimesheet_RequestTotalsScopedToContractPeriod(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	asOf := date(2026, time.March, 31)

	inputs := marchInputs()
	inputs.Contracts = append(inputs.Contracts, approvedContract("c-1", date(2026, time.January, 1), datePtr(2026, time.March, 15)))
	inputs.OvertimeRequests = []overtime.Request{
		overtimeRequest("ot-late", at(date(2026, time.March, 20), 18, 0), at(date(2026, time.March, 20), 21, 0), 1.5),
	}

	summary, _ := engine.MonthlyTimesheet(inputs, testEmployeeID, 2026, time.March, asOf)

	assert.Equal(t, date(2026, time.March, 1), summary.Period.Start)
	assert.Equal(t, date(2026, time.March, 15), summary.Period.End)
	// The overtime request falls after the contract end and drops out of
	// the totals; the leave on the 5th is inside the period and stays.
	assert.Zero(t, summary.OvertimeHours)
	assert.InDelta(t, 8.0, summary.LeaveHours, 1e-9)
}

func TestMonthlyTimesheet_Deterministic(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	asOf := date(2026, time.March, 31)
	inputs := marchInputs()

	firstSummary, firstDays := engine.MonthlyTimesheet(inputs, testEmployeeID, 2026, time.March, asOf)
	secondSummary, secondDays := engine.MonthlyTimesheet(inputs, testEmployeeID, 2026, time.March, asOf)

	assert.Equal(t, firstSummary, secondSummary)
	assert.Equal(t, firstDays, secondDays)
}
