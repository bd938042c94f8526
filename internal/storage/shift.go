package storage

type ShiftTiming struct {
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	AllowFlexibleTiming bool   `json:"allow_flexible_timing"`
	OvertimeAllowed     bool   `json:"overtime_allowed"`
	// 0 = потолок по умолчанию (4 часа)
	MaxOvertimeHours float64 `json:"max_overtime_hours,omitempty"`
}

type BreakTime struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsPaid    bool   `json:"is_paid"`
}

type Shift struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Timing     ShiftTiming `json:"timing"`
	BreakTimes []BreakTime `json:"break_times,omitempty"`
	// "monday".."saturday"; воскресенье всегда выходной
	WorkingDays []string `json:"working_days"`
	IsActive    bool     `json:"is_active"`
}

// ActiveShift — первая активная смена, nil если нет ни одной.
func ActiveShift(shifts []Shift) *Shift {
	for i := range shifts {
		if shifts[i].IsActive {
			return &shifts[i]
		}
	}
	return nil
}
