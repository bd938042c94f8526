package scheduling

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"react-golang/internal/storage"
)

func TestLoad(t *testing.T) {
	items := []storage.ScheduleItem{
		{ID: "a", MachineID: "m1", AllocatedTime: 120},
		{ID: "b", MachineID: "m1", AllocatedTime: 60},
		{ID: "c", MachineID: "m2", AllocatedTime: 300},
		// элемент без расчётного времени — нулевая нагрузка
		{ID: "d", MachineID: "m1"},
	}

	assert.Equal(t, 180.0, Load("m1", items))
	assert.Equal(t, 300.0, Load("m2", items))
	assert.Equal(t, 0.0, Load("m3", items))
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 510.0, Capacity(storage.Machine{WorkingHours: 8.5}))
	// станок без рабочих часов трактуется как восьмичасовой
	assert.Equal(t, 480.0, Capacity(storage.Machine{}))
}

func TestUtilization(t *testing.T) {
	m := storage.Machine{ID: "m1", WorkingHours: 8}
	items := []storage.ScheduleItem{
		{ID: "a", MachineID: "m1", AllocatedTime: 240},
	}

	assert.Equal(t, 50.0, Utilization(m, items))
}

func TestOverloaded(t *testing.T) {
	m := storage.Machine{ID: "m1", WorkingHours: 8}

	assert.False(t, Overloaded(m, []storage.ScheduleItem{
		{ID: "a", MachineID: "m1", AllocatedTime: 480},
	}))
	assert.True(t, Overloaded(m, []storage.ScheduleItem{
		{ID: "a", MachineID: "m1", AllocatedTime: 481},
	}))
}

func TestLoadInInterval(t *testing.T) {
	items := []storage.ScheduleItem{
		{ID: "a", MachineID: "m1", StartDate: day(t, "2026-03-02 09:00"), EndDate: day(t, "2026-03-02 11:00")},
		{ID: "b", MachineID: "m1", StartDate: day(t, "2026-03-02 16:00"), EndDate: day(t, "2026-03-02 18:00")},
		{ID: "c", MachineID: "m2", StartDate: day(t, "2026-03-02 09:00"), EndDate: day(t, "2026-03-02 17:00")},
	}
	from, to := day(t, "2026-03-02 10:00"), day(t, "2026-03-02 17:00")

	// час от первого элемента и час от второго
	assert.Equal(t, 120.0, LoadInInterval("m1", items, from, to))
	// пустой интервал
	assert.Equal(t, 0.0, LoadInInterval("m1", items, to, from))
}
