package storage

const (
	DelayImmediate = "immediate"
	DelayFixed     = "fixed"
	// следующий этап не раньше, чем готова вся партия (поведение по умолчанию)
	DelayAfterBatch = "after_batch"
)

type ProcessDelay struct {
	Type string `json:"type"`
	// пауза в минутах для типа "fixed"
	DelayMinutes float64 `json:"delay_minutes,omitempty"`
}

type ProcessStep struct {
	ID       string `json:"id"`
	Sequence int    `json:"sequence"`
	StepName string `json:"step_name"`
	// основной станок этапа
	MachineID string `json:"machine_id"`
	// запасные станки по порядку предпочтения
	PreferredMachines []string `json:"preferred_machines,omitempty"`
	// минут на одну деталь
	CycleTimePerPart float64 `json:"cycle_time_per_part"`
	// фикс. наладка на этап, не зависит от количества
	SetupTime        float64       `json:"setup_time"`
	NextProcessDelay *ProcessDelay `json:"next_process_delay,omitempty"`
	QualityCheck     bool          `json:"quality_check"`
}

type Product struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	PartNumber  string `json:"part_number,omitempty"`
	// этапы в порядке Sequence, номера уникальны и возрастают
	ProcessFlow []ProcessStep `json:"process_flow"`
}

// StepsInOrder возвращает копию ProcessFlow, отсортированную по Sequence.
func (p *Product) StepsInOrder() []ProcessStep {
	steps := make([]ProcessStep, len(p.ProcessFlow))
	copy(steps, p.ProcessFlow)
	for i := 1; i < len(steps); i++ {
		for j := i; j > 0 && steps[j].Sequence < steps[j-1].Sequence; j-- {
			steps[j], steps[j-1] = steps[j-1], steps[j]
		}
	}
	return steps
}
