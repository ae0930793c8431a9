package contract

import (
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/approval"
)

// Contract is one employment contract window. A nil EndDate (or an
// epoch-sentinel value in the upstream data) means the contract is
// open-ended.
type Contract struct {
	ID            string
	EmployeeID    string
	StartDate     time.Time
	EndDate       *time.Time
	ApproveStatus approval.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Approved reports whether the contract is eligible for period clipping.
func (c Contract) Approved() bool {
	return c.ApproveStatus == approval.StatusApproved
}

// OpenEnded reports whether the contract has no effective end date.
// Upstream exports sometimes encode "no end" as the unix epoch or an
// otherwise pre-start date rather than NULL.
func (c Contract) OpenEnded() bool {
	if c.EndDate == nil {
		return true
	}
	if c.EndDate.Year() <= 1970 {
		return true
	}
	return c.EndDate.Before(c.StartDate)
}

// EffectiveEnd returns the contract's end bound, substituting fallback
// when the contract is open-ended.
func (c Contract) EffectiveEnd(fallback time.Time) time.Time {
	if c.OpenEnded() {
		return fallback
	}
	return *c.EndDate
}
