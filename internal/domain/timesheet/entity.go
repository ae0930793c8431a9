package timesheet

import (
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/contract"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/leave"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/overtime"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timeclock"
)

// DayStatus is the status assigned to one calendar day of one employee.
type DayStatus string

const (
	DayStatusWorked              DayStatus = "worked"
	DayStatusInsufficientHours   DayStatus = "insufficient_hours"
	DayStatusIncompleteTimestamp DayStatus = "incomplete_timestamp"
	DayStatusOnLeave             DayStatus = "on_leave"
	DayStatusAbsentWithoutLeave  DayStatus = "absent_without_leave"
	DayStatusAbsentNoSchedule    DayStatus = "absent_no_schedule"
)

// DayRecord is the engine's derived figure set for one employee-day.
// Recomputed fresh from inputs on every query, never persisted.
type DayRecord struct {
	Date          time.Time
	Status        DayStatus
	WorkedHours   float64
	WorkedDays    float64
	StandardHours float64
	LateMinutes   int
	EarlyMinutes  int
}

// MonthlySummary aggregates DayRecords and request totals for one
// (employee, year, month) key.
type MonthlySummary struct {
	EmployeeID string
	Year       int
	Month      time.Month

	WorkedCount              int
	InsufficientHoursCount   int
	IncompleteTimestampCount int
	OnLeaveCount             int
	AbsentWithoutLeaveCount  int
	AbsentNoScheduleCount    int

	TotalWorkedHours float64
	TotalWorkedDays  float64

	LeaveHours float64
	LeaveDays  float64

	OvertimeHours         float64
	OvertimeWeightedHours float64
	OvertimeDays          float64
	OvertimeWeightedDays  float64

	Period Period
}

// Period is a closed date range, typically a payroll period produced by
// contract clipping.
type Period struct {
	Start time.Time
	End   time.Time
}

// OvertimeRow is one overtime request with its derived figures, as shown
// by the client's overtime detail modal.
type OvertimeRow struct {
	Request       overtime.Request
	Category      overtime.Category
	Hours         float64
	WeightedHours float64
	Days          float64
	WeightedDays  float64
}

// OvertimeBreakdown is the request-level detail plus period totals.
type OvertimeBreakdown struct {
	Rows               []OvertimeRow
	TotalHours         float64
	TotalWeightedHours float64
	TotalDays          float64
	TotalWeightedDays  float64
}

// LeaveRow is one leave request with its derived contribution inside the
// queried period.
type LeaveRow struct {
	Request leave.Request
	Hours   float64
	Days    float64
}

// LeaveBreakdown is the request-level detail plus period totals.
type LeaveBreakdown struct {
	Rows       []LeaveRow
	TotalHours float64
	TotalDays  float64
}

// Inputs is the fully materialized snapshot the engine computes from.
// The engine never fetches; the data-access layer assembles one consistent
// snapshot and hands it over.
type Inputs struct {
	ScanEvents       []timeclock.ScanEvent
	WorkShifts       []schedule.WorkShift
	ShiftAssignments []schedule.ShiftAssignment
	LeaveRequests    []leave.Request
	OvertimeRequests []overtime.Request
	Contracts        []contract.Contract
}

// ShiftByID looks up a work shift from the snapshot's catalog.
func (in Inputs) ShiftByID(id string) *schedule.WorkShift {
	for i := range in.WorkShifts {
		if in.WorkShifts[i].ID == id {
			return &in.WorkShifts[i]
		}
	}
	return nil
}
