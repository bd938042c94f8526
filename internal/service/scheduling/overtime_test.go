package scheduling

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"react-golang/internal/storage"
)

func TestOvertimePolicy_IsAllowed(t *testing.T) {
	policy := DefaultOvertimePolicy()

	assert.False(t, policy.IsAllowed(0, nil))
	assert.False(t, policy.IsAllowed(-1, nil))
	assert.True(t, policy.IsAllowed(4, nil))
	// потолок по умолчанию — 4 часа
	assert.False(t, policy.IsAllowed(5, nil))
}

func TestOvertimePolicy_ShiftOverrides(t *testing.T) {
	policy := DefaultOvertimePolicy()

	forbidden := &storage.Shift{Timing: storage.ShiftTiming{OvertimeAllowed: false}}
	assert.False(t, policy.IsAllowed(1, forbidden))

	extended := &storage.Shift{Timing: storage.ShiftTiming{OvertimeAllowed: true, MaxOvertimeHours: 6}}
	assert.True(t, policy.IsAllowed(5, extended))
	assert.False(t, policy.IsAllowed(7, extended))

	// смена без своего потолка наследует потолок политики
	inherit := &storage.Shift{Timing: storage.ShiftTiming{OvertimeAllowed: true}}
	assert.True(t, policy.IsAllowed(4, inherit))
	assert.False(t, policy.IsAllowed(5, inherit))
}

func TestOvertimePolicy_MultiplierFor(t *testing.T) {
	policy := DefaultOvertimePolicy()

	assert.Equal(t, 1.0, policy.MultiplierFor(0))
	assert.Equal(t, 1.25, policy.MultiplierFor(2))
	assert.Equal(t, 1.5, policy.MultiplierFor(3))
	assert.Equal(t, 2.0, policy.MultiplierFor(8))
	// дальше последней ступени — её множитель
	assert.Equal(t, 2.0, policy.MultiplierFor(12))
}

func TestNewOvertimeRecord(t *testing.T) {
	policy := DefaultOvertimePolicy()
	it := storage.ScheduleItem{
		ID:      "po-1-step-1",
		EndDate: day(t, "2026-03-02 17:00"),
	}
	shift := &storage.Shift{ID: "shift-1", Timing: storage.ShiftTiming{OvertimeAllowed: true}}
	now := day(t, "2026-03-02 15:00")

	rec := policy.NewOvertimeRecord(it, shift, 2, "горящий заказ", now)

	assert.Equal(t, "po-1-step-1", rec.ScheduleItemID)
	assert.Equal(t, "shift-1", rec.ShiftID)
	assert.Equal(t, "2026-03-02", rec.Date)
	assert.Equal(t, 2.0, rec.PlannedOvertimeHours)
	assert.Equal(t, 1.25, rec.CostMultiplier)
	assert.Equal(t, storage.OvertimePlanned, rec.Status)
	// переработка начинается с планового конца элемента
	assert.Equal(t, day(t, "2026-03-02 17:00"), rec.StartTime)
	assert.Equal(t, day(t, "2026-03-02 19:00"), rec.EndTime)
}
