package timesheet

import "time"

// ========================================
// TIMESHEET DTOs
// ========================================

type DayRecordResponse struct {
	Date          string    `json:"date"`
	Status        DayStatus `json:"status"`
	WorkedHours   float64   `json:"worked_hours"`
	WorkedDays    float64   `json:"worked_days"`
	StandardHours float64   `json:"standard_hours"`
	LateMinutes   int       `json:"late_minutes"`
	EarlyMinutes  int       `json:"early_minutes"`
}

func NewDayRecordResponse(r DayRecord) DayRecordResponse {
	return DayRecordResponse{
		Date:          r.Date.Format("2006-01-02"),
		Status:        r.Status,
		WorkedHours:   r.WorkedHours,
		WorkedDays:    r.WorkedDays,
		StandardHours: r.StandardHours,
		LateMinutes:   r.LateMinutes,
		EarlyMinutes:  r.EarlyMinutes,
	}
}

type PeriodResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func NewPeriodResponse(p Period) PeriodResponse {
	return PeriodResponse{
		Start: p.Start.Format("2006-01-02"),
		End:   p.End.Format("2006-01-02"),
	}
}

type MonthlySummaryResponse struct {
	WorkedCount              int `json:"worked_count"`
	InsufficientHoursCount   int `json:"insufficient_hours_count"`
	IncompleteTimestampCount int `json:"incomplete_timestamp_count"`
	OnLeaveCount             int `json:"on_leave_count"`
	AbsentWithoutLeaveCount  int `json:"absent_without_leave_count"`
	AbsentNoScheduleCount    int `json:"absent_no_schedule_count"`

	TotalWorkedHours float64 `json:"total_worked_hours"`
	TotalWorkedDays  float64 `json:"total_worked_days"`

	LeaveHours float64 `json:"leave_hours"`
	LeaveDays  float64 `json:"leave_days"`

	OvertimeHours         float64 `json:"overtime_hours"`
	OvertimeWeightedHours float64 `json:"overtime_weighted_hours"`
	OvertimeDays          float64 `json:"overtime_days"`
	OvertimeWeightedDays  float64 `json:"overtime_weighted_days"`

	Period PeriodResponse `json:"period"`
}

type MonthlyTimesheetResponse struct {
	EmployeeID string                 `json:"employee_id"`
	Year       int                    `json:"year"`
	Month      int                    `json:"month"`
	Days       []DayRecordResponse    `json:"days"`
	Summary    MonthlySummaryResponse `json:"summary"`
}

func NewMonthlyTimesheetResponse(summary MonthlySummary, days []DayRecord) MonthlyTimesheetResponse {
	dayResponses := make([]DayRecordResponse, 0, len(days))
	for _, d := range days {
		dayResponses = append(dayResponses, NewDayRecordResponse(d))
	}
	return MonthlyTimesheetResponse{
		EmployeeID: summary.EmployeeID,
		Year:       summary.Year,
		Month:      int(summary.Month),
		Days:       dayResponses,
		Summary: MonthlySummaryResponse{
			WorkedCount:              summary.WorkedCount,
			InsufficientHoursCount:   summary.InsufficientHoursCount,
			IncompleteTimestampCount: summary.IncompleteTimestampCount,
			OnLeaveCount:             summary.OnLeaveCount,
			AbsentWithoutLeaveCount:  summary.AbsentWithoutLeaveCount,
			AbsentNoScheduleCount:    summary.AbsentNoScheduleCount,
			TotalWorkedHours:         summary.TotalWorkedHours,
			TotalWorkedDays:          summary.TotalWorkedDays,
			LeaveHours:               summary.LeaveHours,
			LeaveDays:                summary.LeaveDays,
			OvertimeHours:            summary.OvertimeHours,
			OvertimeWeightedHours:    summary.OvertimeWeightedHours,
			OvertimeDays:             summary.OvertimeDays,
			OvertimeWeightedDays:     summary.OvertimeWeightedDays,
			Period:                   NewPeriodResponse(summary.Period),
		},
	}
}

type OvertimeRowResponse struct {
	ID            string  `json:"id"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	FormName      string  `json:"form_name"`
	Category      string  `json:"category"`
	Coefficient   float64 `json:"coefficient"`
	Hours         float64 `json:"hours"`
	WeightedHours float64 `json:"weighted_hours"`
	Days          float64 `json:"days"`
	WeightedDays  float64 `json:"weighted_days"`
}

type OvertimeBreakdownResponse struct {
	Rows               []OvertimeRowResponse `json:"rows"`
	TotalHours         float64               `json:"total_hours"`
	TotalWeightedHours float64               `json:"total_weighted_hours"`
	TotalDays          float64               `json:"total_days"`
	TotalWeightedDays  float64               `json:"total_weighted_days"`
}

func NewOvertimeBreakdownResponse(b OvertimeBreakdown) OvertimeBreakdownResponse {
	rows := make([]OvertimeRowResponse, 0, len(b.Rows))
	for _, row := range b.Rows {
		rows = append(rows, OvertimeRowResponse{
			ID:            row.Request.ID,
			Start:         row.Request.StartDateTime.Format(time.RFC3339),
			End:           row.Request.EndDateTime.Format(time.RFC3339),
			FormName:      row.Request.OvertimeFormName,
			Category:      string(row.Category),
			Coefficient:   row.Request.EffectiveCoefficient(),
			Hours:         row.Hours,
			WeightedHours: row.WeightedHours,
			Days:          row.Days,
			WeightedDays:  row.WeightedDays,
		})
	}
	return OvertimeBreakdownResponse{
		Rows:               rows,
		TotalHours:         b.TotalHours,
		TotalWeightedHours: b.TotalWeightedHours,
		TotalDays:          b.TotalDays,
		TotalWeightedDays:  b.TotalWeightedDays,
	}
}

type LeaveRowResponse struct {
	ID            string  `json:"id"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	LeaveTypeName string  `json:"leave_type_name"`
	Hours         float64 `json:"hours"`
	Days          float64 `json:"days"`
}

type LeaveBreakdownResponse struct {
	Rows       []LeaveRowResponse `json:"rows"`
	TotalHours float64            `json:"total_hours"`
	TotalDays  float64            `json:"total_days"`
}

func NewLeaveBreakdownResponse(b LeaveBreakdown) LeaveBreakdownResponse {
	rows := make([]LeaveRowResponse, 0, len(b.Rows))
	for _, row := range b.Rows {
		rows = append(rows, LeaveRowResponse{
			ID:            row.Request.ID,
			Start:         row.Request.StartDateTime.Format(time.RFC3339),
			End:           row.Request.EndDateTime.Format(time.RFC3339),
			LeaveTypeName: row.Request.LeaveTypeName,
			Hours:         row.Hours,
			Days:          row.Days,
		})
	}
	return LeaveBreakdownResponse{
		Rows:       rows,
		TotalHours: b.TotalHours,
		TotalDays:  b.TotalDays,
	}
}
