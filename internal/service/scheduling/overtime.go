package scheduling

import (
	"fmt"
	"time"

	"react-golang/internal/storage"
)

// Границы ступеней стоимости — настройка, не константа движка:
// вызывающий подставляет свои из конфига.
type OvertimeTier struct {
	UpToHours  float64 `yaml:"up_to_hours" json:"up_to_hours"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
}

type OvertimePolicy struct {
	// потолок, если смена его не задаёт
	DefaultMaxHours float64
	// ступени по возрастанию UpToHours
	Tiers []OvertimeTier
}

func DefaultOvertimePolicy() OvertimePolicy {
	return OvertimePolicy{
		DefaultMaxHours: 4,
		Tiers: []OvertimeTier{
			{UpToHours: 2, Multiplier: 1.25},
			{UpToHours: 4, Multiplier: 1.5},
			{UpToHours: 8, Multiplier: 2},
		},
	}
}

// IsAllowed: переработка запрещена сменой либо превышает её лимит — отказ.
func (p OvertimePolicy) IsAllowed(hours float64, shift *storage.Shift) bool {
	if hours <= 0 {
		return false
	}
	max := p.DefaultMaxHours
	if max <= 0 {
		max = 4
	}
	if shift != nil {
		if !shift.Timing.OvertimeAllowed {
			return false
		}
		if shift.Timing.MaxOvertimeHours > 0 {
			max = shift.Timing.MaxOvertimeHours
		}
	}
	return hours <= max
}

// MultiplierFor — монотонная ступенчатая функция стоимости.
func (p OvertimePolicy) MultiplierFor(hours float64) float64 {
	if hours <= 0 {
		return 1
	}
	tiers := p.Tiers
	if len(tiers) == 0 {
		tiers = DefaultOvertimePolicy().Tiers
	}
	for _, t := range tiers {
		if hours <= t.UpToHours {
			return t.Multiplier
		}
	}
	return tiers[len(tiers)-1].Multiplier
}

// NewOvertimeRecord — заявка на переработку: сверх планового конца
// элемента, статус planned до решения мастера.
func (p OvertimePolicy) NewOvertimeRecord(item storage.ScheduleItem, shift *storage.Shift, hours float64, reason string, now time.Time) storage.OvertimeRecord {
	shiftID := ""
	if shift != nil {
		shiftID = shift.ID
	}
	return storage.OvertimeRecord{
		ID:                   fmt.Sprintf("%s-ot-%d", item.ID, now.UnixMilli()),
		ScheduleItemID:       item.ID,
		ShiftID:              shiftID,
		Date:                 now.Format("2006-01-02"),
		PlannedOvertimeHours: hours,
		Reason:               reason,
		Status:               storage.OvertimePlanned,
		CostMultiplier:       p.MultiplierFor(hours),
		StartTime:            item.EndDate,
		EndTime:              item.EndDate.Add(time.Duration(hours * float64(time.Hour))),
	}
}
