package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/approval"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/leave"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timesheet"
)

const testEmployeeID = "EMP-001"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(day time.Time, h, m int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.UTC)
}

func clock(h, m int) time.Time {
	return time.Date(0, 1, 1, h, m, 0, 0, time.UTC)
}

func clockPtr(h, m int) *time.Time {
	t := clock(h, m)
	return &t
}

// fullWeekShift builds a shift with the same window on every weekday so
// tests are independent of which weekday a fixture date lands on.
func fullWeekShift(id string, start, end time.Time, breakStart, breakEnd *time.Time) schedule.WorkShift {
	shift := schedule.WorkShift{ID: id, Name: "Office " + id}
	for _, name := range schedule.WeekdayNames {
		shift.ShiftDetails = append(shift.ShiftDetails, schedule.ShiftDetail{
			DayOfWeek:  name,
			StartTime:  start,
			EndTime:    end,
			BreakStart: breakStart,
			BreakEnd:   breakEnd,
		})
	}
	return shift
}

func assignment(employeeID string, day time.Time, shiftID string) schedule.ShiftAssignment {
	return schedule.ShiftAssignment{
		ID:          "assign-" + day.Format("2006-01-02"),
		EmployeeID:  employeeID,
		WorkDate:    day,
		WorkShiftID: shiftID,
	}
}

func scan(employeeID string, day time.Time, h, m int, scanType string) timeclock.ScanEvent {
	return timeclock.ScanEvent{
		ID:         "scan",
		EmployeeID: employeeID,
		WorkDate:   day,
		ScanTime:   at(day, h, m),
		ScanType:   scanType,
	}
}

// officeInputs is the standard fixture: an 08:00-17:00 shift with a
// 12:00-13:00 break assigned on the given days.
func officeInputs(days ...time.Time) timesheet.Inputs {
	inputs := timesheet.Inputs{
		WorkShifts: []schedule.WorkShift{
			fullWeekShift("shift-office", clock(8, 0), clock(17, 0), clockPtr(12, 0), clockPtr(13, 0)),
		},
	}
	for _, day := range days {
		inputs.ShiftAssignments = append(inputs.ShiftAssignments, assignment(testEmployeeID, day, "shift-office"))
	}
	return inputs
}

func TestDayPunches(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	day := date(2026, time.March, 2)

	t.Run("earliest in and latest out win", func(t *testing.T) {
		events := []timeclock.ScanEvent{
			scan(testEmployeeID, day, 8, 30, "checkin"),
			scan(testEmployeeID, day, 8, 0, "check-in"),
			scan(testEmployeeID, day, 17, 0, "checkout"),
			scan(testEmployeeID, day, 17, 30, "out"),
		}

		pair := engine.DayPunches(events, testEmployeeID, day)

		require.True(t, pair.Complete())
		assert.Equal(t, at(day, 8, 0), *pair.CheckIn)
		assert.Equal(t, at(day, 17, 30), *pair.CheckOut)
	})

	t.Run("unknown scan types are skipped", func(t *testing.T) {
		events := []timeclock.ScanEvent{
			scan(testEmployeeID, day, 8, 0, "break"),
			scan(testEmployeeID, day, 17, 0, "checkout"),
		}

		pair := engine.DayPunches(events, testEmployeeID, day)

		assert.Nil(t, pair.CheckIn)
		require.NotNil(t, pair.CheckOut)
		assert.Equal(t, at(day, 17, 0), *pair.CheckOut)
	})

	t.Run("other employees and other days are ignored", func(t *testing.T) {
		events := []timeclock.ScanEvent{
			scan("EMP-002", day, 8, 0, "checkin"),
			scan(testEmployeeID, day.AddDate(0, 0, 1), 8, 0, "checkin"),
		}

		pair := engine.DayPunches(events, testEmployeeID, day)

		assert.True(t, pair.Empty())
	})

	t.Run("employee IDs match after trimming", func(t *testing.T) {
		events := []timeclock.ScanEvent{
			scan(" EMP-001 ", day, 8, 0, "checkin"),
		}

		pair := engine.DayPunches(events, testEmployeeID, day)

		require.NotNil(t, pair.CheckIn)
	})

	t.Run("zero scan times are skipped", func(t *testing.T) {
		events := []timeclock.ScanEvent{
			{EmployeeID: testEmployeeID, WorkDate: day, ScanType: "checkin"},
		}

		pair := engine.DayPunches(events, testEmployeeID, day)

		assert.True(t, pair.Empty())
	})
}

func TestResolveShift(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	day := date(2026, time.March, 2)

	t.Run("assignment resolves to the weekday window", func(t *testing.T) {
		inputs := officeInputs(day)

		detail := engine.ResolveShift(inputs, testEmployeeID, day)

		require.NotNil(t, detail)
		assert.Equal(t, clock(8, 0), detail.StartTime)
		assert.Equal(t, clock(17, 0), detail.EndTime)
	})

	t.Run("no assignment resolves to nil", func(t *testing.T) {
		inputs := officeInputs(day)

		assert.Nil(t, engine.ResolveShift(inputs, testEmployeeID, day.AddDate(0, 0, 1)))
	})

	t.Run("midnight sentinel window resolves to nil", func(t *testing.T) {
		inputs := timesheet.Inputs{
			WorkShifts: []schedule.WorkShift{
				fullWeekShift("shift-empty", clock(0, 0), clock(0, 0), nil, nil),
			},
			ShiftAssignments: []schedule.ShiftAssignment{assignment(testEmployeeID, day, "shift-empty")},
		}

		assert.Nil(t, engine.ResolveShift(inputs, testEmployeeID, day))
	})

	t.Run("assignment to an unknown shift resolves to nil", func(t *testing.T) {
		inputs := timesheet.Inputs{
			ShiftAssignments: []schedule.ShiftAssignment{assignment(testEmployeeID, day, "shift-missing")},
		}

		assert.Nil(t, engine.ResolveShift(inputs, testEmployeeID, day))
	})
}

func TestDayRecord_FullDayOnShift(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	day := date(2026, time.March, 2)
	asOf := date(2026, time.March, 31)

	inputs := officeInputs(day)
	inputs.ScanEvents = []timeclock.ScanEvent{
		scan(testEmployeeID, day, 8, 0, "checkin"),
		scan(testEmployeeID, day, 17, 0, "checkout"),
	}

	rec := engine.DayRecord(inputs, testEmployeeID, day, asOf)

	assert.Equal(t, timesheet.DayStatusWorked, rec.Status)
	assert.InDelta(t, 8.0, rec.WorkedHours, 1e-9)
	assert.InDelta(t, 1.0, rec.WorkedDays, 1e-9)
	assert.InDelta(t, 8.0, rec.StandardHours, 1e-9)
	assert.Equal(t, 0, rec.LateMinutes)
	assert.Equal(t, 0, rec.EarlyMinutes)
}

func TestDayRecord_LateArrival(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	day := date(2026, time.March, 2)
	asOf := date(2026, time.March, 31)

	inputs := officeInputs(day)
	inputs.ScanEvents = []timeclock.ScanEvent{
		scan(testEmployeeID, day, 8, 45, "checkin"),
		scan(testEmployeeID, day, 17, 0, "checkout"),
	}

	rec := engine.DayRecord(inputs, testEmployeeID, day, asOf)

	assert.Equal(t, timesheet.DayStatusInsufficientHours, rec.Status)
	assert.InDelta(t, 7.25, rec.WorkedHours, 1e-9)
	assert.InDelta(t, 0.91, rec.WorkedDays, 1e-9)
	assert.Equal(t, 45, rec.LateMinutes)
	assert.Equal(t, 0, rec.EarlyMinutes)
}

func TestDayRecord_EarlyDeparture(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	day := date(2026, time.March, 2)
	asOf := date(2026, time.March, 31)

	inputs := officeInputs(day)
	inputs.ScanEvents = []timeclock.ScanEvent{
		scan(testEmployeeID, day, 8, 0, "checkin"),
		scan(testEmployeeID, day, 16, 30, "checkout"),
	}

	rec := engine.DayRecord(inputs, testEmployeeID, day, asOf)

	assert.Equal(t, timesheet.DayStatusInsufficientHours, rec.Status)
	assert.InDelta(t, 7.5, rec.WorkedHours, 1e-9)
	assert.Equal(t, 0, rec.LateMinutes)
	assert.Equal(t, 30, rec.EarlyMinutes)
}

func TestDayRecord_PunchesOutsideShiftAreClamped(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	day := date(2026, time.March, 2)
	asOf := date(2026, time.March, 31)

	inputs := officeInputs(day)
	inputs.ScanEvents = []timeclock.ScanEvent{
		scan(testEmployeeID, day, 7, 0, "checkin"),
		scan(testEmployeeID, day, 19, 0, "checkout"),
	}

	rec := engine.DayRecord(inputs, testEmployeeID, day, asOf)

	// Extra time outside the window never inflates worked hours.
	assert.Equal(t, timesheet.DayStatusWorked, rec.Status)
	assert.InDelta(t, 8.0, rec.WorkedHours, 1e-9)
	assert.Equal(t, 0, rec.LateMinutes)
	assert.Equal(t, 0, rec.EarlyMinutes)
}

func TestDayRecord_NoSchedule(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	day := date(2026, time.March, 2)
	asOf := date(2026, time.March, 31)

	inputs := timesheet.Inputs{
		ScanEvents: []timeclock.ScanEvent{
			scan(testEmployeeID, day, 9, 0, "checkin"),
			scan(testEmployeeID, day, 18, 0, "checkout"),
		},
	}

	rec := engine.DayRecord(inputs, testEmployeeID, day, asOf)

	// Without a shift the raw span counts in full against the fixed
	// fallback standard, with no lateness concept.
	assert.Equal(t, timesheet.DayStatusWorked, rec.Status)
	assert.InDelta(t, 9.0, rec.WorkedHours, 1e-9)
	assert.InDelta(t, 1.13, rec.WorkedDays, 1e-9)
	assert.InDelta(t, 8.0, rec.StandardHours, 1e-9)
	assert.Equal(t, 0, rec.LateMinutes)
	assert.Equal(t, 0, rec.EarlyMinutes)
}

func TestDayRecord_IncompleteTimestamp(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	day := date(2026, time.March, 2)
	asOf := date(2026, time.March, 31)

	inputs := officeInputs(day)
	inputs.ScanEvents = []timeclock.ScanEvent{
		scan(testEmployeeID, day, 8, 0, "checkin"),
	}

	rec := engine.DayRecord(inputs, testEmployeeID, day, asOf)

	assert.Equal(t, timesheet.DayStatusIncompleteTimestamp, rec.Status)
	assert.Zero(t, rec.WorkedHours)
	assert.Zero(t, rec.WorkedDays)
}

func TestDayRecord_AbsenceStatuses(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	day := date(2026, time.March, 2)

	t.Run("scheduled day without punches is unexcused once past", func(t *testing.T) {
		inputs := officeInputs(day)

		rec := engine.DayRecord(inputs, testEmployeeID, day, date(2026, time.March, 31))

		assert.Equal(t, timesheet.DayStatusAbsentWithoutLeave, rec.Status)
	})

	t.Run("future scheduled day is not an absence yet", func(t *testing.T) {
		inputs := officeInputs(day)

		rec := engine.DayRecord(inputs, testEmployeeID, day, date(2026, time.March, 1))

		assert.Equal(t, timesheet.DayStatusAbsentNoSchedule, rec.Status)
	})

	t.Run("asOf on the day itself already counts", func(t *testing.T) {
		inputs := officeInputs(day)

		rec := engine.DayRecord(inputs, testEmployeeID, day, at(day, 9, 30))

		assert.Equal(t, timesheet.DayStatusAbsentWithoutLeave, rec.Status)
	})

	t.Run("unscheduled day without punches has no schedule", func(t *testing.T) {
		rec := engine.DayRecord(timesheet.Inputs{}, testEmployeeID, day, date(2026, time.March, 31))

		assert.Equal(t, timesheet.DayStatusAbsentNoSchedule, rec.Status)
	})
}

func TestDayRecord_LeaveTakesPrecedenceOverPunches(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	day := date(2026, time.March, 2)
	asOf := date(2026, time.March, 31)

	inputs := officeInputs(day)
	inputs.ScanEvents = []timeclock.ScanEvent{
		scan(testEmployeeID, day, 8, 0, "checkin"),
		scan(testEmployeeID, day, 17, 0, "checkout"),
	}
	inputs.LeaveRequests = []leave.Request{
		{
			ID:            "leave-1",
			EmployeeID:    testEmployeeID,
			StartDateTime: at(day, 8, 0),
			EndDateTime:   at(day, 17, 0),
			ApproveStatus: approval.StatusApproved,
		},
	}

	rec := engine.DayRecord(inputs, testEmployeeID, day, asOf)

	assert.Equal(t, timesheet.DayStatusOnLeave, rec.Status)
	assert.Zero(t, rec.WorkedHours)
}

func TestDayRecord_PendingLeaveDoesNotCount(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	day := date(2026, time.March, 2)
	asOf := date(2026, time.March, 31)

	inputs := officeInputs(day)
	inputs.LeaveRequests = []leave.Request{
		{
			ID:            "leave-1",
			EmployeeID:    testEmployeeID,
			StartDateTime: at(day, 8, 0),
			EndDateTime:   at(day, 17, 0),
			ApproveStatus: approval.StatusPending,
		},
	}

	rec := engine.DayRecord(inputs, testEmployeeID, day, asOf)

	assert.Equal(t, timesheet.DayStatusAbsentWithoutLeave, rec.Status)
}
