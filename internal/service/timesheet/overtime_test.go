package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/approval"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/overtime"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/timesheet"
)

func overtimeRequest(id string, start, end time.Time, coefficient float64) overtime.Request {
	return overtime.Request{
		ID:               id,
		EmployeeID:       testEmployeeID,
		StartDateTime:    start,
		EndDateTime:      end,
		Coefficient:      coefficient,
		OvertimeFormName: "Làm thêm tính lương",
		ApproveStatus:    approval.StatusApproved,
	}
}

func TestOvertimeBreakdown(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	periodStart := date(2026, time.March, 1)
	periodEnd := date(2026, time.March, 31)

	t.Run("evening overtime with coefficient", func(t *testing.T) {
		day := date(2026, time.March, 2)
		inputs := timesheet.Inputs{
			OvertimeRequests: []overtime.Request{
				overtimeRequest("ot-1", at(day, 18, 0), at(day, 21, 0), 1.5),
			},
		}

		breakdown := engine.OvertimeBreakdown(inputs, testEmployeeID, periodStart, periodEnd)

		require.Len(t, breakdown.Rows, 1)
		row := breakdown.Rows[0]
		assert.Equal(t, overtime.CategoryPaid, row.Category)
		assert.InDelta(t, 3.0, row.Hours, 1e-9)
		assert.InDelta(t, 4.5, row.WeightedHours, 1e-9)
		assert.InDelta(t, 0.38, row.Days, 1e-9)
		assert.InDelta(t, 0.56, row.WeightedDays, 1e-9)
		assert.InDelta(t, 3.0, breakdown.TotalHours, 1e-9)
		assert.InDelta(t, 4.5, breakdown.TotalWeightedHours, 1e-9)
	})

	t.Run("zero coefficient counts as one", func(t *testing.T) {
		day := date(2026, time.March, 2)
		inputs := timesheet.Inputs{
			OvertimeRequests: []overtime.Request{
				overtimeRequest("ot-1", at(day, 18, 0), at(day, 20, 0), 0),
			},
		}

		breakdown := engine.OvertimeBreakdown(inputs, testEmployeeID, periodStart, periodEnd)

		require.Len(t, breakdown.Rows, 1)
		assert.InDelta(t, 2.0, breakdown.Rows[0].WeightedHours, 1e-9)
	})

	t.Run("compensatory form name classifies the row", func(t *testing.T) {
		day := date(2026, time.March, 2)
		req := overtimeRequest("ot-1", at(day, 18, 0), at(day, 20, 0), 1)
		req.OvertimeFormName = "Làm thêm nghỉ bù"
		inputs := timesheet.Inputs{OvertimeRequests: []overtime.Request{req}}

		breakdown := engine.OvertimeBreakdown(inputs, testEmployeeID, periodStart, periodEnd)

		require.Len(t, breakdown.Rows, 1)
		assert.Equal(t, overtime.CategoryCompensatory, breakdown.Rows[0].Category)
	})

	t.Run("request straddling the period is clipped", func(t *testing.T) {
		inputs := timesheet.Inputs{
			OvertimeRequests: []overtime.Request{
				overtimeRequest("ot-1", at(date(2026, time.February, 28), 20, 0), at(date(2026, time.March, 1), 2, 0), 1),
			},
		}

		breakdown := engine.OvertimeBreakdown(inputs, testEmployeeID, periodStart, periodEnd)

		// Only the two hours past midnight fall inside March.
		require.Len(t, breakdown.Rows, 1)
		assert.InDelta(t, 2.0, breakdown.Rows[0].Hours, 1e-9)
	})

	t.Run("request entirely outside the period is dropped", func(t *testing.T) {
		day := date(2026, time.April, 2)
		inputs := timesheet.Inputs{
			OvertimeRequests: []overtime.Request{
				overtimeRequest("ot-1", at(day, 18, 0), at(day, 21, 0), 1),
			},
		}

		breakdown := engine.OvertimeBreakdown(inputs, testEmployeeID, periodStart, periodEnd)

		assert.Empty(t, breakdown.Rows)
		assert.Zero(t, breakdown.TotalHours)
	})

	t.Run("pending requests contribute nothing", func(t *testing.T) {
		day := date(2026, time.March, 2)
		req := overtimeRequest("ot-1", at(day, 18, 0), at(day, 21, 0), 1.5)
		req.ApproveStatus = approval.StatusPending
		inputs := timesheet.Inputs{OvertimeRequests: []overtime.Request{req}}

		breakdown := engine.OvertimeBreakdown(inputs, testEmployeeID, periodStart, periodEnd)

		assert.Empty(t, breakdown.Rows)
	})
}
