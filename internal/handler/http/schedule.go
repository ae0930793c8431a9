package http

import (
	"net/http"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timekeeping-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	GetWorkShift(w http.ResponseWriter, r *http.Request)
	ListWorkShifts(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GetWorkShift implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetWorkShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shiftID")

	result, err := h.scheduleService.GetWorkShift(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListWorkShifts implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListWorkShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.ListWorkShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
