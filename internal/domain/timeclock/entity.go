package timeclock

import (
	"strings"
	"time"
)

// ScanKind classifies a raw scan type as one side of a punch pair.
type ScanKind int

const (
	ScanKindUnknown ScanKind = iota
	ScanKindCheckIn
	ScanKindCheckOut
)

// ScanEvent is one raw clock scan as pushed by the mobile client or a
// fingerprint terminal. Immutable once ingested.
type ScanEvent struct {
	ID         string
	EmployeeID string
	WorkDate   time.Time // the working day the scan belongs to (date only)
	ScanTime   time.Time
	ScanType   string
	CreatedAt  time.Time
}

// Kind resolves the event's raw scan type through the classification table.
func (e ScanEvent) Kind() ScanKind {
	return ClassifyScanType(e.ScanType)
}

// scanKindTable is the fixed classification of raw scan type labels.
// Terminals and older app builds emit several aliases for each side.
var scanKindTable = map[string]ScanKind{
	"checkin":        ScanKindCheckIn,
	"check-in":       ScanKindCheckIn,
	"check_in":       ScanKindCheckIn,
	"in":             ScanKindCheckIn,
	"arrived":        ScanKindCheckIn,
	"arrived-late":   ScanKindCheckIn,
	"vào":            ScanKindCheckIn,
	"checkout":       ScanKindCheckOut,
	"check-out":      ScanKindCheckOut,
	"check_out":      ScanKindCheckOut,
	"out":            ScanKindCheckOut,
	"departed":       ScanKindCheckOut,
	"departed-early": ScanKindCheckOut,
	"ra":             ScanKindCheckOut,
}

// ClassifyScanType maps a raw scan type label to a ScanKind. Unknown labels
// return ScanKindUnknown and the event is skipped by the aggregator.
func ClassifyScanType(raw string) ScanKind {
	kind, ok := scanKindTable[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return ScanKindUnknown
	}
	return kind
}

// DayPunchPair is the per-employee, per-day reduction of scan events:
// the earliest check-in-like scan and the latest check-out-like scan.
// Either side may be missing.
type DayPunchPair struct {
	EmployeeID string
	WorkDate   time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
}

// Complete reports whether both sides of the pair are present.
func (p DayPunchPair) Complete() bool {
	return p.CheckIn != nil && p.CheckOut != nil
}

// Empty reports whether neither side of the pair is present.
func (p DayPunchPair) Empty() bool {
	return p.CheckIn == nil && p.CheckOut == nil
}
