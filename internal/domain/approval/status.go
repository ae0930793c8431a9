package approval

import (
	"strconv"
	"strings"
)

// Status is the normalized approval state of a request or contract.
// Upstream systems encode this as a mix of numeric codes, English aliases
// and Vietnamese display strings; Normalize is the single place where raw
// values are mapped into this enum.
type Status int

const (
	StatusCreated Status = iota
	StatusPending
	StatusApproved
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	default:
		return "created"
	}
}

// statusAliases maps every known raw encoding (lowercased, trimmed) to a
// Status. Vietnamese entries come from the upstream payroll screens.
var statusAliases = map[string]Status{
	"created":      StatusCreated,
	"new":          StatusCreated,
	"tạo mới":      StatusCreated,
	"pending":      StatusPending,
	"waiting":      StatusPending,
	"chờ duyệt":    StatusPending,
	"chờ phê duyệt": StatusPending,
	"approved":     StatusApproved,
	"approve":      StatusApproved,
	"đã duyệt":     StatusApproved,
	"đã phê duyệt": StatusApproved,
	"rejected":     StatusRejected,
	"reject":       StatusRejected,
	"từ chối":      StatusRejected,
}

// Normalize maps a raw status value to a Status. Numeric codes 0-3 are
// accepted both as numbers-in-strings and as plain digits. Unrecognized
// values degrade to StatusCreated, which no aggregate counts.
func Normalize(raw string) Status {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return StatusCreated
	}
	if s, ok := statusAliases[v]; ok {
		return s
	}
	if code, err := strconv.Atoi(v); err == nil {
		return NormalizeCode(code)
	}
	return StatusCreated
}

// NormalizeCode maps the upstream numeric encoding (0=created, 1=pending,
// 2=approved, 3=rejected) to a Status.
func NormalizeCode(code int) Status {
	switch code {
	case 1:
		return StatusPending
	case 2:
		return StatusApproved
	case 3:
		return StatusRejected
	default:
		return StatusCreated
	}
}
