package storage

const (
	MachineActive      = "active"
	MachineMaintenance = "maintenance"
	MachineBreakdown   = "breakdown"
	MachineInactive    = "inactive"
)

type Machine struct {
	ID          string `json:"id"`
	MachineName string `json:"machine_name"`
	MachineType string `json:"machine_type"`
	// "HH:MM-HH:MM" либо "Custom"
	ShiftTiming string `json:"shift_timing"`
	// начало смены для "Custom", пусто = 09:00
	CustomStart string `json:"custom_start,omitempty"`
	// пересчитывается из ShiftTiming при каждом сохранении
	WorkingHours float64 `json:"working_hours"`
	Status       string  `json:"status"`
	// 0-100, множитель производительности
	Efficiency float64 `json:"efficiency"`
	OperatorID *string `json:"operator_id,omitempty"`
	Location   string  `json:"location,omitempty"`
}
