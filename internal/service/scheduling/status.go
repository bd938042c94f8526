package scheduling

import (
	"math"
	"time"

	"react-golang/internal/storage"
)

// фактические времена важнее плановых
func effectiveStart(it storage.ScheduleItem) time.Time {
	if it.ActualStartTime != nil {
		return *it.ActualStartTime
	}
	return it.StartDate
}

func effectiveEnd(it storage.ScheduleItem) time.Time {
	if it.ActualEndTime != nil {
		return *it.ActualEndTime
	}
	return it.EndDate
}

// AutoStatus выводит живой статус из времени и отметок, без опроса.
// Ручной статус не трогаем — кроме scheduled, просроченного мимо конца
// окна: такой честно показываем как delayed.
func AutoStatus(it storage.ScheduleItem, now time.Time) string {
	start, end := effectiveStart(it), effectiveEnd(it)

	if it.SchedulingMode == storage.ModeManual {
		if it.Status == storage.StatusScheduled && now.After(end) {
			return storage.StatusDelayed
		}
		return it.Status
	}

	if it.Status == storage.StatusCompleted || it.ActualEndTime != nil {
		return storage.StatusCompleted
	}
	if now.Before(start) {
		return storage.StatusScheduled
	}
	if now.Before(end) {
		return storage.StatusInProgress
	}
	// окно прошло, а завершение не зафиксировано
	return storage.StatusDelayed
}

// Progress: явный прогресс важнее вычисленного; иначе линейная
// интерполяция по окну, зажатая в [0,100].
func Progress(it storage.ScheduleItem, now time.Time) float64 {
	if it.Progress != nil {
		return clampPercent(*it.Progress)
	}

	start, end := effectiveStart(it), effectiveEnd(it)
	if !end.After(start) {
		if now.Before(start) {
			return 0
		}
		return 100
	}
	frac := now.Sub(start).Minutes() / end.Sub(start).Minutes() * 100
	return clampPercent(math.Round(frac))
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ToggleSchedulingMode переключает auto/manual с отметкой в журнале.
func ToggleSchedulingMode(it storage.ScheduleItem, mode, user string, now time.Time) storage.ScheduleItem {
	it.SchedulingMode = mode
	it.ActionHistory = append(it.ActionHistory, storage.ActionRecord{
		Action:    "scheduling_mode_" + mode,
		Timestamp: now,
		User:      user,
	})
	return it
}

// ApplyManualStatus — ручная смена статуса оператором: прогресс и
// фактические времена подтягиваются, переход пишется в журнал.
func ApplyManualStatus(it storage.ScheduleItem, status, user string, now time.Time) storage.ScheduleItem {
	it.Status = status

	switch status {
	case storage.StatusCompleted:
		p := 100.0
		it.Progress = &p
		if it.ActualEndTime == nil {
			t := now
			it.ActualEndTime = &t
		}
	case storage.StatusInProgress:
		if it.ActualStartTime == nil {
			t := now
			it.ActualStartTime = &t
		}
	case storage.StatusScheduled:
		p := 0.0
		it.Progress = &p
	}

	it.ActionHistory = append(it.ActionHistory, storage.ActionRecord{
		Action:    "status_changed_to_" + status,
		Timestamp: now,
		User:      user,
	})
	return it
}
