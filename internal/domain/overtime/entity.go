package overtime

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/approval"
)

// Category groups overtime requests for display and payroll treatment.
type Category string

const (
	CategoryPaid         Category = "paid"
	CategoryCompensatory Category = "compensatory"
)

const (
	formIDPaid         = 1
	formIDCompensatory = 2
)

// Request is one overtime request. Coefficient is the payable-hours
// multiplier; a zero value means the upstream record omitted it and is
// treated as 1.
type Request struct {
	ID               string
	EmployeeID       string
	StartDateTime    time.Time
	EndDateTime      time.Time
	Coefficient      float64
	OvertimeFormID   int
	OvertimeFormName string
	ApproveStatus    approval.Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Approved reports whether the request counts toward aggregates.
func (r Request) Approved() bool {
	return r.ApproveStatus == approval.StatusApproved
}

// EffectiveCoefficient returns the coefficient with the default-1 rule
// applied for absent or zero values.
func (r Request) EffectiveCoefficient() float64 {
	if r.Coefficient <= 0 {
		return 1
	}
	return r.Coefficient
}

// Classify resolves the request's category from its form name or numeric
// form ID. The upstream form names are Vietnamese; unrecognized forms
// default to paid overtime.
func (r Request) Classify() Category {
	name := strings.ToLower(r.OvertimeFormName)
	switch {
	case strings.Contains(name, "tính lương"):
		return CategoryPaid
	case strings.Contains(name, "nghỉ bù"):
		return CategoryCompensatory
	case r.OvertimeFormID == formIDPaid:
		return CategoryPaid
	case r.OvertimeFormID == formIDCompensatory:
		return CategoryCompensatory
	default:
		return CategoryPaid
	}
}
