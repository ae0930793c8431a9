package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timekeeping-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	GetDayRecord(w http.ResponseWriter, r *http.Request)
	GetMonthlyTimesheet(w http.ResponseWriter, r *http.Request)
	GetMyMonthlyTimesheet(w http.ResponseWriter, r *http.Request)
	GetOvertimeBreakdown(w http.ResponseWriter, r *http.Request)
	GetLeaveBreakdown(w http.ResponseWriter, r *http.Request)
	GetContractPeriod(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

func parseDateParam(r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func parseYearMonth(r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// GetDayRecord implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetDayRecord(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date, ok := parseDateParam(r, "date")
	if !ok {
		response.BadRequest(w, "Query parameter 'date' must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	result, err := h.timesheetService.GetDayRecord(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlyTimesheet implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetMonthlyTimesheet(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	result, err := h.timesheetService.GetMonthlyTimesheet(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyMonthlyTimesheet implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetMyMonthlyTimesheet(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	result, err := h.timesheetService.GetMyMonthlyTimesheet(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOvertimeBreakdown implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetOvertimeBreakdown(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	start, okStart := parseDateParam(r, "start")
	end, okEnd := parseDateParam(r, "end")
	if !okStart || !okEnd {
		response.BadRequest(w, "Query parameters 'start' and 'end' must be valid dates (YYYY-MM-DD)", nil)
		return
	}

	result, err := h.timesheetService.GetOvertimeBreakdown(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLeaveBreakdown implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetLeaveBreakdown(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	start, okStart := parseDateParam(r, "start")
	end, okEnd := parseDateParam(r, "end")
	if !okStart || !okEnd {
		response.BadRequest(w, "Query parameters 'start' and 'end' must be valid dates (YYYY-MM-DD)", nil)
		return
	}

	result, err := h.timesheetService.GetLeaveBreakdown(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetContractPeriod implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetContractPeriod(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Query parameters 'year' and 'month' are required", nil)
		return
	}

	result, err := h.timesheetService.GetContractPeriod(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
