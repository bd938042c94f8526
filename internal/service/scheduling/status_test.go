package scheduling

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"react-golang/internal/storage"
)

func autoItem(t *testing.T) storage.ScheduleItem {
	t.Helper()
	return storage.ScheduleItem{
		ID:             "po-1-step-1",
		StartDate:      day(t, "2026-03-02 10:00"),
		EndDate:        day(t, "2026-03-02 12:00"),
		Status:         storage.StatusScheduled,
		SchedulingMode: storage.ModeAuto,
	}
}

func TestAutoStatus_FromClock(t *testing.T) {
	it := autoItem(t)

	assert.Equal(t, storage.StatusScheduled, AutoStatus(it, day(t, "2026-03-02 09:00")))
	assert.Equal(t, storage.StatusInProgress, AutoStatus(it, day(t, "2026-03-02 11:00")))
	// окно прошло, завершение не зафиксировано
	assert.Equal(t, storage.StatusDelayed, AutoStatus(it, day(t, "2026-03-02 13:00")))
}

func TestAutoStatus_CompletedIsSticky(t *testing.T) {
	it := autoItem(t)
	it.Status = storage.StatusCompleted

	assert.Equal(t, storage.StatusCompleted, AutoStatus(it, day(t, "2026-03-02 09:00")))

	it = autoItem(t)
	end := day(t, "2026-03-02 11:30")
	it.ActualEndTime = &end

	assert.Equal(t, storage.StatusCompleted, AutoStatus(it, day(t, "2026-03-02 13:00")))
}

// ручной статус не перетирается проектором
func TestAutoStatus_ManualPinned(t *testing.T) {
	it := autoItem(t)
	it.SchedulingMode = storage.ModeManual
	it.Status = storage.StatusPaused

	assert.Equal(t, storage.StatusPaused, AutoStatus(it, day(t, "2026-03-02 13:00")))
}

// кроме scheduled мимо конца окна — такой честно показываем как delayed
func TestAutoStatus_ManualScheduledOverdue(t *testing.T) {
	it := autoItem(t)
	it.SchedulingMode = storage.ModeManual

	assert.Equal(t, storage.StatusScheduled, AutoStatus(it, day(t, "2026-03-02 11:00")))
	assert.Equal(t, storage.StatusDelayed, AutoStatus(it, day(t, "2026-03-02 13:00")))
}

// фактический старт важнее планового
func TestAutoStatus_ActualStart(t *testing.T) {
	it := autoItem(t)
	actual := day(t, "2026-03-02 09:30")
	it.ActualStartTime = &actual

	assert.Equal(t, storage.StatusInProgress, AutoStatus(it, day(t, "2026-03-02 09:45")))
}

func TestProgress_Interpolated(t *testing.T) {
	it := autoItem(t)

	assert.Equal(t, 0.0, Progress(it, day(t, "2026-03-02 09:00")))
	assert.Equal(t, 50.0, Progress(it, day(t, "2026-03-02 11:00")))
	assert.Equal(t, 75.0, Progress(it, day(t, "2026-03-02 11:30")))
	// за пределами окна зажимается
	assert.Equal(t, 100.0, Progress(it, day(t, "2026-03-02 13:00")))
}

func TestProgress_ExplicitWins(t *testing.T) {
	it := autoItem(t)
	p := 30.0
	it.Progress = &p

	assert.Equal(t, 30.0, Progress(it, day(t, "2026-03-02 13:00")))

	over := 140.0
	it.Progress = &over
	assert.Equal(t, 100.0, Progress(it, day(t, "2026-03-02 13:00")))
}

func TestProgress_DegenerateWindow(t *testing.T) {
	it := autoItem(t)
	it.EndDate = it.StartDate

	assert.Equal(t, 0.0, Progress(it, day(t, "2026-03-02 09:00")))
	assert.Equal(t, 100.0, Progress(it, day(t, "2026-03-02 10:00")))
}

func TestApplyManualStatus_Completed(t *testing.T) {
	it := autoItem(t)
	now := day(t, "2026-03-02 11:40")

	it = ApplyManualStatus(it, storage.StatusCompleted, "мастер", now)

	assert.Equal(t, storage.StatusCompleted, it.Status)
	assert.Equal(t, 100.0, *it.Progress)
	assert.Equal(t, now, *it.ActualEndTime)
	assert.Len(t, it.ActionHistory, 1)
	assert.Equal(t, "status_changed_to_completed", it.ActionHistory[0].Action)
	assert.Equal(t, "мастер", it.ActionHistory[0].User)
}

func TestApplyManualStatus_InProgress(t *testing.T) {
	it := autoItem(t)
	now := day(t, "2026-03-02 10:05")

	it = ApplyManualStatus(it, storage.StatusInProgress, "оператор", now)

	assert.Equal(t, storage.StatusInProgress, it.Status)
	assert.Equal(t, now, *it.ActualStartTime)

	// повторный переход не перетирает фактический старт
	later := day(t, "2026-03-02 10:30")
	it = ApplyManualStatus(it, storage.StatusInProgress, "оператор", later)
	assert.Equal(t, now, *it.ActualStartTime)
}

func TestApplyManualStatus_BackToScheduled(t *testing.T) {
	it := autoItem(t)

	it = ApplyManualStatus(it, storage.StatusScheduled, "мастер", day(t, "2026-03-02 09:00"))

	assert.Equal(t, 0.0, *it.Progress)
}

func TestToggleSchedulingMode(t *testing.T) {
	it := autoItem(t)

	it = ToggleSchedulingMode(it, storage.ModeManual, "мастер", day(t, "2026-03-02 10:00"))

	assert.Equal(t, storage.ModeManual, it.SchedulingMode)
	assert.Len(t, it.ActionHistory, 1)
	assert.Equal(t, "scheduling_mode_manual", it.ActionHistory[0].Action)
}
