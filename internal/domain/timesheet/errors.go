package timesheet

import "errors"

var (
	ErrInvalidPeriod = errors.New("period start must not be after period end")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12")
)
