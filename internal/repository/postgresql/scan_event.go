package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/database"
	"github.com/google/uuid"
)

type scanEventRepository struct {
	db *database.DB
}

func NewScanEventRepository(db *database.DB) timeclock.ScanEventRepository {
	return &scanEventRepository{db: db}
}

// Create implements timeclock.ScanEventRepository.
func (r *scanEventRepository) Create(ctx context.Context, event timeclock.ScanEvent) (timeclock.ScanEvent, error) {
	q := GetQuerier(ctx, r.db)

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	query := `
		INSERT INTO scan_events (id, employee_id, work_date, scan_time, scan_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.WorkDate,
		event.ScanTime,
		event.ScanType,
	).Scan(&event.CreatedAt)

	if err != nil {
		return timeclock.ScanEvent{}, fmt.Errorf("failed to create scan event: %w", err)
	}

	return event, nil
}

// ListByEmployeeAndRange implements timeclock.ScanEventRepository.
func (r *scanEventRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]timeclock.ScanEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, scan_time, scan_type, created_at
		FROM scan_events
		WHERE employee_id = $1
		  AND work_date >= $2
		  AND work_date <= $3
		ORDER BY scan_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan events: %w", err)
	}
	defer rows.Close()

	var events []timeclock.ScanEvent
	for rows.Next() {
		var ev timeclock.ScanEvent
		if err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.WorkDate, &ev.ScanTime, &ev.ScanType, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scan event row: %w", err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scan event rows: %w", err)
	}

	return events, nil
}
