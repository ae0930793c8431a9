package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/contract"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/leave"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/overtime"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timesheet"
	"github.com/go-chi/jwtauth/v5"
)

type TimesheetServiceImpl struct {
	engine *Engine
	timeclock.ScanEventRepository
	schedule.WorkShiftRepository
	schedule.ShiftAssignmentRepository
	leaveRepo    leave.RequestRepository
	overtimeRepo overtime.RequestRepository
	contract.ContractRepository

	// now is injected so the absence cutoff is testable.
	now func() time.Time
}

func NewTimesheetService(
	engine *Engine,
	scanRepo timeclock.ScanEventRepository,
	workShiftRepo schedule.WorkShiftRepository,
	assignmentRepo schedule.ShiftAssignmentRepository,
	leaveRepo leave.RequestRepository,
	overtimeRepo overtime.RequestRepository,
	contractRepo contract.ContractRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		engine:                    engine,
		ScanEventRepository:       scanRepo,
		WorkShiftRepository:       workShiftRepo,
		ShiftAssignmentRepository: assignmentRepo,
		leaveRepo:                 leaveRepo,
		overtimeRepo:              overtimeRepo,
		ContractRepository:        contractRepo,
		now:                       time.Now,
	}
}

// loadInputs assembles one consistent snapshot of every collection the
// engine needs for [from, to].
func (s *TimesheetServiceImpl) loadInputs(ctx context.Context, employeeID string, from, to time.Time) (timesheet.Inputs, error) {
	var inputs timesheet.Inputs
	var err error

	inputs.ScanEvents, err = s.ScanEventRepository.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return timesheet.Inputs{}, fmt.Errorf("failed to list scan events: %w", err)
	}

	inputs.WorkShifts, err = s.WorkShiftRepository.List(ctx)
	if err != nil {
		return timesheet.Inputs{}, fmt.Errorf("failed to list work shifts: %w", err)
	}

	inputs.ShiftAssignments, err = s.ShiftAssignmentRepository.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return timesheet.Inputs{}, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	inputs.LeaveRequests, err = s.leaveRepo.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return timesheet.Inputs{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	inputs.OvertimeRequests, err = s.overtimeRepo.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return timesheet.Inputs{}, fmt.Errorf("failed to list overtime requests: %w", err)
	}

	inputs.Contracts, err = s.ContractRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return timesheet.Inputs{}, fmt.Errorf("failed to list contracts: %w", err)
	}

	return inputs, nil
}

// GetDayRecord implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetDayRecord(ctx context.Context, employeeID string, date time.Time) (timesheet.DayRecordResponse, error) {
	inputs, err := s.loadInputs(ctx, employeeID, date, date)
	if err != nil {
		return timesheet.DayRecordResponse{}, err
	}

	record := s.engine.DayRecord(inputs, employeeID, date, s.now())
	return timesheet.NewDayRecordResponse(record), nil
}

// GetMonthlyTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetMonthlyTimesheet(ctx context.Context, employeeID string, year int, month time.Month) (timesheet.MonthlyTimesheetResponse, error) {
	if month < time.January || month > time.December {
		return timesheet.MonthlyTimesheetResponse{}, timesheet.ErrInvalidMonth
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	inputs, err := s.loadInputs(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return timesheet.MonthlyTimesheetResponse{}, err
	}

	summary, days := s.engine.MonthlyTimesheet(inputs, employeeID, year, month, s.now())
	return timesheet.NewMonthlyTimesheetResponse(summary, days), nil
}

// GetMyMonthlyTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetMyMonthlyTimesheet(ctx context.Context, year int, month time.Month) (timesheet.MonthlyTimesheetResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return timesheet.MonthlyTimesheetResponse{}, err
	}
	return s.GetMonthlyTimesheet(ctx, employeeID, year, month)
}

// GetOvertimeBreakdown implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetOvertimeBreakdown(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (timesheet.OvertimeBreakdownResponse, error) {
	if periodStart.After(periodEnd) {
		return timesheet.OvertimeBreakdownResponse{}, timesheet.ErrInvalidPeriod
	}

	inputs, err := s.loadInputs(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return timesheet.OvertimeBreakdownResponse{}, err
	}

	breakdown := s.engine.OvertimeBreakdown(inputs, employeeID, periodStart, periodEnd)
	return timesheet.NewOvertimeBreakdownResponse(breakdown), nil
}

// GetLeaveBreakdown implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetLeaveBreakdown(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (timesheet.LeaveBreakdownResponse, error) {
	if periodStart.After(periodEnd) {
		return timesheet.LeaveBreakdownResponse{}, timesheet.ErrInvalidPeriod
	}

	inputs, err := s.loadInputs(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return timesheet.LeaveBreakdownResponse{}, err
	}

	breakdown := s.engine.LeaveBreakdown(inputs, employeeID, periodStart, periodEnd)
	return timesheet.NewLeaveBreakdownResponse(breakdown), nil
}

// GetContractPeriod implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetContractPeriod(ctx context.Context, employeeID string, year int, month time.Month) (timesheet.PeriodResponse, error) {
	if month < time.January || month > time.December {
		return timesheet.PeriodResponse{}, timesheet.ErrInvalidMonth
	}

	contracts, err := s.ContractRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return timesheet.PeriodResponse{}, fmt.Errorf("failed to list contracts: %w", err)
	}

	period := s.engine.ContractPeriod(contracts, employeeID, year, month)
	return timesheet.NewPeriodResponse(period), nil
}

func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}
