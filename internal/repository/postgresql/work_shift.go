package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workShiftRepository struct {
	db *database.DB
}

func NewWorkShiftRepository(db *database.DB) schedule.WorkShiftRepository {
	return &workShiftRepository{db: db}
}

// GetByID implements schedule.WorkShiftRepository.
func (r *workShiftRepository) GetByID(ctx context.Context, id string) (schedule.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM work_shifts
		WHERE id = $1
	`

	var shift schedule.WorkShift
	err := q.QueryRow(ctx, query, id).Scan(&shift.ID, &shift.Name, &shift.CreatedAt, &shift.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkShift{}, schedule.ErrWorkShiftNotFound
		}
		return schedule.WorkShift{}, fmt.Errorf("failed to get work shift: %w", err)
	}

	details, err := r.listDetails(ctx, shift.ID)
	if err != nil {
		return schedule.WorkShift{}, err
	}
	shift.ShiftDetails = details

	return shift, nil
}

// List implements schedule.WorkShiftRepository.
func (r *workShiftRepository) List(ctx context.Context) ([]schedule.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM work_shifts
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work shifts: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.WorkShift
	for rows.Next() {
		var shift schedule.WorkShift
		if err := rows.Scan(&shift.ID, &shift.Name, &shift.CreatedAt, &shift.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work shift row: %w", err)
		}
		shifts = append(shifts, shift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work shift rows: %w", err)
	}

	for i := range shifts {
		details, err := r.listDetails(ctx, shifts[i].ID)
		if err != nil {
			return nil, err
		}
		shifts[i].ShiftDetails = details
	}

	return shifts, nil
}

func (r *workShiftRepository) listDetails(ctx context.Context, workShiftID string) ([]schedule.ShiftDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT day_of_week, start_time, end_time, break_start, break_end
		FROM shift_details
		WHERE work_shift_id = $1
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query, workShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift details: %w", err)
	}
	defer rows.Close()

	var details []schedule.ShiftDetail
	for rows.Next() {
		var d schedule.ShiftDetail
		var start, end time.Time
		var breakStart, breakEnd *time.Time
		if err := rows.Scan(&d.DayOfWeek, &start, &end, &breakStart, &breakEnd); err != nil {
			return nil, fmt.Errorf("failed to scan shift detail row: %w", err)
		}
		d.StartTime = start
		d.EndTime = end
		d.BreakStart = breakStart
		d.BreakEnd = breakEnd
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift detail rows: %w", err)
	}

	return details, nil
}
