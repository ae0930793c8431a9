package timeclock

import (
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/validator"
)

// ========================================
// TIMECLOCK DTOs
// ========================================

type IngestScanRequest struct {
	EmployeeID string `json:"employee_id"`
	WorkDate   string `json:"work_date"` // YYYY-MM-DD
	ScanTime   string `json:"scan_time"` // RFC3339 or "2006-01-02 15:04:05"
	ScanType   string `json:"scan_type"`
}

func (r *IngestScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if validator.IsEmpty(r.ScanTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "scan_time",
			Message: "scan_time is required",
		})
	}

	if ClassifyScanType(r.ScanType) == ScanKindUnknown {
		errs = append(errs, validator.ValidationError{
			Field:   "scan_type",
			Message: "scan_type is not a recognized check-in or check-out type",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScanEventResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	WorkDate   string `json:"work_date"`
	ScanTime   string `json:"scan_time"`
	ScanType   string `json:"scan_type"`
	CreatedAt  string `json:"created_at"`
}

func NewScanEventResponse(e ScanEvent) ScanEventResponse {
	return ScanEventResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		WorkDate:   e.WorkDate.Format("2006-01-02"),
		ScanTime:   e.ScanTime.Format(time.RFC3339),
		ScanType:   e.ScanType,
		CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
