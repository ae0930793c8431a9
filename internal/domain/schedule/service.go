package schedule

import "context"

// ScheduleService defines read access to the shift catalog.
type ScheduleService interface {
	// GetWorkShift retrieves one shift with its weekday windows.
	GetWorkShift(ctx context.Context, id string) (WorkShiftResponse, error)

	// ListWorkShifts retrieves the full shift catalog.
	ListWorkShifts(ctx context.Context) ([]WorkShiftResponse, error)
}
