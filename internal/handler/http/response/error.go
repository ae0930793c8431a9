package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/contract"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/leave"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/overtime"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Schedule domain errors
	case errors.Is(err, schedule.ErrWorkShiftNotFound):
		NotFound(w, "Work shift not found")
	case errors.Is(err, schedule.ErrShiftAssignmentNotFound):
		NotFound(w, "Shift assignment not found")

	// Timeclock domain errors
	case errors.Is(err, timeclock.ErrScanEventNotFound):
		NotFound(w, "Scan event not found")
	case errors.Is(err, timeclock.ErrUnknownScanType):
		BadRequest(w, "Unknown scan type", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidPeriod):
		BadRequest(w, "Period start must not be after period end", nil)
	case errors.Is(err, timesheet.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)

	// Request domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, overtime.ErrOvertimeRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
