package schedule

import "time"

// ========================================
// SCHEDULE DTOs
// ========================================

type ShiftDetailResponse struct {
	DayOfWeek  string  `json:"day_of_week"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	Configured bool    `json:"configured"`
}

type WorkShiftResponse struct {
	ID      string                `json:"id"`
	Name    string                `json:"name"`
	Details []ShiftDetailResponse `json:"details"`
}

func clockString(t time.Time) string {
	return t.Format("15:04:05")
}

func clockStringPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

func NewWorkShiftResponse(s WorkShift) WorkShiftResponse {
	details := make([]ShiftDetailResponse, 0, len(s.ShiftDetails))
	for _, d := range s.ShiftDetails {
		details = append(details, ShiftDetailResponse{
			DayOfWeek:  d.DayOfWeek,
			StartTime:  clockString(d.StartTime),
			EndTime:    clockString(d.EndTime),
			BreakStart: clockStringPtr(d.BreakStart),
			BreakEnd:   clockStringPtr(d.BreakEnd),
			Configured: d.Configured(),
		})
	}
	return WorkShiftResponse{
		ID:      s.ID,
		Name:    s.Name,
		Details: details,
	}
}
