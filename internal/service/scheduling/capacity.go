package scheduling

import (
	"time"

	"react-golang/internal/storage"
)

// Load — занятые минуты станка по текущему расписанию.
// Элементы без AllocatedTime считаются нулевой нагрузкой.
func Load(machineID string, items []storage.ScheduleItem) float64 {
	var total float64
	for _, it := range items {
		if it.MachineID != machineID {
			continue
		}
		if it.AllocatedTime > 0 {
			total += it.AllocatedTime
		}
	}
	return total
}

// Capacity — минут в сутки. Станок без рабочих часов
// трактуем как восьмичасовой, как делает фронтенд.
func Capacity(m storage.Machine) float64 {
	h := m.WorkingHours
	if h <= 0 {
		h = 8
	}
	return h * 60
}

// Utilization — процент загрузки для отчётов.
func Utilization(m storage.Machine, items []storage.ScheduleItem) float64 {
	capacity := Capacity(m)
	if capacity <= 0 {
		return 0
	}
	return Load(m.ID, items) / capacity * 100
}

// LoadInInterval — занятые минуты станка, пересекающиеся с интервалом.
func LoadInInterval(machineID string, items []storage.ScheduleItem, from, to time.Time) float64 {
	if !to.After(from) {
		return 0
	}
	var total float64
	for _, it := range items {
		if it.MachineID != machineID {
			continue
		}
		start, end := it.StartDate, it.EndDate
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		if end.After(start) {
			total += end.Sub(start).Minutes()
		}
	}
	return total
}

// Overloaded — нагрузка превышает суточную мощность.
func Overloaded(m storage.Machine, items []storage.ScheduleItem) bool {
	return Load(m.ID, items) > Capacity(m)
}
