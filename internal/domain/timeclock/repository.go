package timeclock

import (
	"context"
	"time"
)

// ScanEventRepository defines data access for raw scan events.
type ScanEventRepository interface {
	// Create stores a newly ingested scan event and returns it with its ID.
	Create(ctx context.Context, event ScanEvent) (ScanEvent, error)

	// ListByEmployeeAndRange retrieves scan events for an employee whose
	// work date falls inside [from, to] inclusive, ordered by scan time.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]ScanEvent, error)
}
