package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/approval"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/leave"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

// ListByEmployeeAndRange implements leave.RequestRepository.
// The approve_status column carries whatever encoding the upstream system
// used; it is normalized here, at the ingestion boundary.
func (r *leaveRequestRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_datetime, end_datetime, leave_type_name,
			   work_shift_id, approve_status, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND start_datetime <= $2
		  AND end_datetime >= $3
		ORDER BY start_datetime ASC
	`

	rows, err := q.Query(ctx, query, employeeID, endOfRange(to), from)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		var rawStatus string
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.StartDateTime, &req.EndDateTime, &req.LeaveTypeName,
			&req.WorkShiftID, &rawStatus, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		req.ApproveStatus = approval.Normalize(rawStatus)
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave request rows: %w", err)
	}

	return requests, nil
}

// endOfRange pushes a date bound to the last second of its day so that
// datetime columns compare against the full day.
func endOfRange(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
