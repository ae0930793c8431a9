package schedule

import "time"

// Canonical weekday labels used by ShiftDetail.DayOfWeek. These match
// time.Weekday.String() so resolution is a direct name lookup.
var WeekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// WorkShift is a named weekly schedule template with at most one time
// window per weekday.
type WorkShift struct {
	ID           string
	Name         string
	ShiftDetails []ShiftDetail
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ShiftDetail is one weekday's start/end/break window within a WorkShift.
// All times are wall-clock-of-day values; the date component is ignored.
// A start and end both equal to 00:00:00 means the weekday has no schedule
// configured, never a real midnight-to-midnight shift.
type ShiftDetail struct {
	DayOfWeek  string
	StartTime  time.Time
	EndTime    time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
}

// Configured reports whether the detail describes a real working window.
func (d ShiftDetail) Configured() bool {
	return !(isMidnight(d.StartTime) && isMidnight(d.EndTime))
}

// HasBreak reports whether both break boundaries are configured.
func (d ShiftDetail) HasBreak() bool {
	return d.BreakStart != nil && d.BreakEnd != nil &&
		!(isMidnight(*d.BreakStart) && isMidnight(*d.BreakEnd))
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0
}

// DetailFor returns the shift detail applying to the given calendar date,
// or nil when the weekday has no configured window.
func (s WorkShift) DetailFor(date time.Time) *ShiftDetail {
	name := date.Weekday().String()
	for i := range s.ShiftDetails {
		if s.ShiftDetails[i].DayOfWeek == name {
			if !s.ShiftDetails[i].Configured() {
				return nil
			}
			return &s.ShiftDetails[i]
		}
	}
	return nil
}

// ShiftAssignment declares that an employee was scheduled on a date.
type ShiftAssignment struct {
	ID          string
	EmployeeID  string
	WorkDate    time.Time
	WorkShiftID string
}
