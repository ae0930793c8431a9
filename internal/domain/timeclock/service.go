package timeclock

import (
	"context"
	"time"
)

// TimeclockService defines business logic for raw scan ingestion.
type TimeclockService interface {
	// IngestScan validates and stores one raw clock scan.
	IngestScan(ctx context.Context, req IngestScanRequest) (ScanEventResponse, error)

	// ListScans retrieves an employee's scans for a date range.
	ListScans(ctx context.Context, employeeID string, from, to time.Time) ([]ScanEventResponse, error)

	// ListMyScans is ListScans for the authenticated employee.
	ListMyScans(ctx context.Context, from, to time.Time) ([]ScanEventResponse, error)
}
