package overtime

import (
	"context"
	"time"
)

// RequestRepository defines data access for overtime requests.
type RequestRepository interface {
	// ListByEmployeeAndRange retrieves overtime requests for an employee
	// whose span intersects [from, to] inclusive.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Request, error)
}
