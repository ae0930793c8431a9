package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/approval"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/overtime"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/database"
)

type overtimeRequestRepository struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) overtime.RequestRepository {
	return &overtimeRequestRepository{db: db}
}

// ListByEmployeeAndRange implements overtime.RequestRepository.
func (r *overtimeRequestRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_datetime, end_datetime, coefficient,
			   overtime_form_id, overtime_form_name, approve_status, created_at, updated_at
		FROM overtime_requests
		WHERE employee_id = $1
		  AND start_datetime <= $2
		  AND end_datetime >= $3
		ORDER BY start_datetime ASC
	`

	rows, err := q.Query(ctx, query, employeeID, endOfRange(to), from)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.Request
	for rows.Next() {
		var req overtime.Request
		var rawStatus string
		var coefficient *float64
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.StartDateTime, &req.EndDateTime, &coefficient,
			&req.OvertimeFormID, &req.OvertimeFormName, &rawStatus, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overtime request row: %w", err)
		}
		if coefficient != nil {
			req.Coefficient = *coefficient
		}
		req.ApproveStatus = approval.Normalize(rawStatus)
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime request rows: %w", err)
	}

	return requests, nil
}
