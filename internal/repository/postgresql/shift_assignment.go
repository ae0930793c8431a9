package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/database"
)

type shiftAssignmentRepository struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) schedule.ShiftAssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

// ListByEmployeeAndRange implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, work_shift_id
		FROM shift_assignments
		WHERE employee_id = $1
		  AND work_date >= $2
		  AND work_date <= $3
		ORDER BY work_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.ShiftAssignment
	for rows.Next() {
		var a schedule.ShiftAssignment
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.WorkDate, &a.WorkShiftID); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift assignment rows: %w", err)
	}

	return assignments, nil
}
