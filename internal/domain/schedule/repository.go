package schedule

import (
	"context"
	"time"
)

// WorkShiftRepository defines data access for the shift catalog.
type WorkShiftRepository interface {
	// GetByID retrieves a work shift with its nested shift details.
	GetByID(ctx context.Context, id string) (WorkShift, error)

	// List retrieves the full shift catalog.
	List(ctx context.Context) ([]WorkShift, error)
}

// ShiftAssignmentRepository defines data access for per-date assignments.
type ShiftAssignmentRepository interface {
	// ListByEmployeeAndRange retrieves assignments for an employee whose
	// work date falls inside [from, to] inclusive.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]ShiftAssignment, error)
}
