package timeclock

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timeclock"
	"github.com/go-chi/jwtauth/v5"
)

type TimeclockServiceImpl struct {
	timeclock.ScanEventRepository
}

func NewTimeclockService(scanRepo timeclock.ScanEventRepository) timeclock.TimeclockService {
	return &TimeclockServiceImpl{
		ScanEventRepository: scanRepo,
	}
}

// parseScanTime accepts both the mobile client's RFC3339 timestamps and
// the terminal export format.
func parseScanTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", raw)
}

// IngestScan implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) IngestScan(ctx context.Context, req timeclock.IngestScanRequest) (timeclock.ScanEventResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.ScanEventResponse{}, err
	}

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return timeclock.ScanEventResponse{}, fmt.Errorf("failed to parse work date: %w", err)
	}

	scanTime, err := parseScanTime(req.ScanTime)
	if err != nil {
		return timeclock.ScanEventResponse{}, fmt.Errorf("failed to parse scan time: %w", err)
	}

	event := timeclock.ScanEvent{
		EmployeeID: req.EmployeeID,
		WorkDate:   workDate,
		ScanTime:   scanTime,
		ScanType:   req.ScanType,
	}

	created, err := s.ScanEventRepository.Create(ctx, event)
	if err != nil {
		return timeclock.ScanEventResponse{}, fmt.Errorf("failed to create scan event: %w", err)
	}

	return timeclock.NewScanEventResponse(created), nil
}

// ListScans implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) ListScans(ctx context.Context, employeeID string, from, to time.Time) ([]timeclock.ScanEventResponse, error) {
	events, err := s.ScanEventRepository.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan events: %w", err)
	}

	responses := make([]timeclock.ScanEventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, timeclock.NewScanEventResponse(event))
	}
	return responses, nil
}

// ListMyScans implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) ListMyScans(ctx context.Context, from, to time.Time) ([]timeclock.ScanEventResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	return s.ListScans(ctx, employeeID, from, to)
}
