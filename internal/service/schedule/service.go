package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/schedule"
)

type scheduleServiceImpl struct {
	workShiftRepo schedule.WorkShiftRepository
}

func NewScheduleService(workShiftRepo schedule.WorkShiftRepository) schedule.ScheduleService {
	return &scheduleServiceImpl{
		workShiftRepo: workShiftRepo,
	}
}

// GetWorkShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetWorkShift(ctx context.Context, id string) (schedule.WorkShiftResponse, error) {
	shift, err := s.workShiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkShiftNotFound) {
			return schedule.WorkShiftResponse{}, schedule.ErrWorkShiftNotFound
		}
		return schedule.WorkShiftResponse{}, fmt.Errorf("failed to get work shift: %w", err)
	}

	return schedule.NewWorkShiftResponse(shift), nil
}

// ListWorkShifts implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListWorkShifts(ctx context.Context) ([]schedule.WorkShiftResponse, error) {
	shifts, err := s.workShiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work shifts: %w", err)
	}

	responses := make([]schedule.WorkShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, schedule.NewWorkShiftResponse(shift))
	}
	return responses, nil
}
