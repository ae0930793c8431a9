package leave

import (
	"context"
	"time"
)

// RequestRepository defines data access for leave requests.
type RequestRepository interface {
	// ListByEmployeeAndRange retrieves leave requests for an employee whose
	// span intersects [from, to] inclusive.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Request, error)
}
