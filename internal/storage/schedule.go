package storage

import "time"

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusDelayed    = "delayed"
	StatusPaused     = "paused"
)

const (
	ModeAuto   = "auto"
	ModeManual = "manual"
)

type ActionRecord struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
}

type ScheduleItem struct {
	ID          string `json:"id"`
	POID        string `json:"po_id"`
	ProductID   string `json:"product_id"`
	MachineID   string `json:"machine_id"`
	ProcessStep int    `json:"process_step"`
	Quantity    int    `json:"quantity"`
	// минуты: наладка + количество * цикл, с поправкой на эффективность станка
	AllocatedTime float64   `json:"allocated_time"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	// фактические времена, проставляются вручную либо проектором статуса
	ActualStartTime *time.Time `json:"actual_start_time,omitempty"`
	ActualEndTime   *time.Time `json:"actual_end_time,omitempty"`
	Status          string     `json:"status"`
	// nil = прогресс выводится из времени
	Progress       *float64 `json:"progress,omitempty"`
	SchedulingMode string   `json:"scheduling_mode"`
	Efficiency     float64  `json:"efficiency"`
	QualityScore   float64  `json:"quality_score"`

	OvertimeRecords      []OvertimeRecord `json:"overtime_records,omitempty"`
	PlannedOvertimeHours float64          `json:"planned_overtime_hours,omitempty"`
	Notes                string           `json:"notes,omitempty"`
	// журнал переходов статуса, только добавление
	ActionHistory []ActionRecord `json:"action_history,omitempty"`
}

const (
	OvertimePlanned   = "planned"
	OvertimeApproved  = "approved"
	OvertimeRejected  = "rejected"
	OvertimeCompleted = "completed"
)

type OvertimeRecord struct {
	ID                   string    `json:"id"`
	ScheduleItemID       string    `json:"schedule_item_id"`
	ShiftID              string    `json:"shift_id"`
	Date                 string    `json:"date"`
	PlannedOvertimeHours float64   `json:"planned_overtime_hours"`
	ActualOvertimeHours  *float64  `json:"actual_overtime_hours,omitempty"`
	Reason               string    `json:"reason"`
	Status               string    `json:"status"`
	CostMultiplier       float64   `json:"cost_multiplier"`
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
}

const (
	ConflictDeliveryOverrun   = "delivery_overrun"
	ConflictUnresolvedMachine = "unresolved_machine"
)

// ScheduleConflict живёт один проход генерации: отдали вызывающему — забыли.
type ScheduleConflict struct {
	Type             string        `json:"type"`
	NewPO            PurchaseOrder `json:"new_po"`
	ConflictingPO    PurchaseOrder `json:"conflicting_po"`
	MachineID        string        `json:"machine_id"`
	SuggestedEndDate time.Time     `json:"suggested_end_date"`
	UserMessage      string        `json:"user_message"`
}
