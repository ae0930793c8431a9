package timeclock

import "errors"

var (
	ErrScanEventNotFound = errors.New("scan event not found")
	ErrUnknownScanType   = errors.New("unknown scan type")
)
