package leave

import (
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/approval"
)

// Request is one leave request. It may span multiple calendar days; the
// time components of StartDateTime/EndDateTime carry the partial-day
// boundaries on the first and last day of the span.
type Request struct {
	ID            string
	EmployeeID    string
	StartDateTime time.Time
	EndDateTime   time.Time
	LeaveTypeName string
	WorkShiftID   *string
	ApproveStatus approval.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Approved reports whether the request counts toward aggregates.
func (r Request) Approved() bool {
	return r.ApproveStatus == approval.StatusApproved
}

// CoversDate reports whether the target date falls inside the request's
// calendar-day span.
func (r Request) CoversDate(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(r.StartDateTime)) && !d.After(dateOnly(r.EndDateTime))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
