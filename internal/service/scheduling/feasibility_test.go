package scheduling

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"react-golang/internal/storage"
)

func TestCheckFeasibility_Feasible(t *testing.T) {
	po := storage.PurchaseOrder{
		ID: "po-new", PONumber: "SO-100", ProductID: "prod-1",
		Quantity: 48, DeliveryDate: "2026-03-02",
	}

	feasible, suggested := CheckFeasibility(
		po,
		testProduct("prod-1", "m1"),
		[]storage.Machine{testMachine("m1")},
		nil, nil, nil,
		day(t, "2026-03-02 09:00"),
		0,
	)

	// 480 минут укладываются в понедельник целиком
	assert.True(t, feasible)
	assert.Nil(t, suggested)
}

func TestCheckFeasibility_SuggestsDate(t *testing.T) {
	po := storage.PurchaseOrder{
		ID: "po-new", PONumber: "SO-100", ProductID: "prod-1",
		Quantity: 48, DeliveryDate: "2026-03-01",
	}

	feasible, suggested := CheckFeasibility(
		po,
		testProduct("prod-1", "m1"),
		[]storage.Machine{testMachine("m1")},
		nil, nil, nil,
		day(t, "2026-03-02 09:00"),
		0,
	)

	assert.False(t, feasible)
	assert.NotNil(t, suggested)
	// завершение в понедельник 17:00 — первая достижимая дата 2 марта
	assert.Equal(t, "2026-03-02", *suggested)
}

// гипотетический заказ кладётся поверх занятых станков
func TestCheckFeasibility_RespectsCommitted(t *testing.T) {
	po := storage.PurchaseOrder{
		ID: "po-new", PONumber: "SO-100", ProductID: "prod-1",
		Quantity: 48, DeliveryDate: "2026-03-02",
	}
	committed := []storage.ScheduleItem{
		{ID: "po-old-step-1", MachineID: "m1", EndDate: day(t, "2026-03-02 17:00")},
	}

	feasible, suggested := CheckFeasibility(
		po,
		testProduct("prod-1", "m1"),
		[]storage.Machine{testMachine("m1")},
		nil, nil, committed,
		day(t, "2026-03-02 09:00"),
		0,
	)

	// станок занят весь понедельник, заказ уезжает на вторник
	assert.False(t, feasible)
	assert.Equal(t, "2026-03-03", *suggested)
}

func TestCheckFeasibility_HorizonExhausted(t *testing.T) {
	po := storage.PurchaseOrder{
		ID: "po-new", PONumber: "SO-100", ProductID: "prod-1",
		Quantity: 48, DeliveryDate: "2026-03-01",
	}
	committed := []storage.ScheduleItem{
		{ID: "po-old-step-1", MachineID: "m1", EndDate: day(t, "2026-04-20 17:00")},
	}

	feasible, suggested := CheckFeasibility(
		po,
		testProduct("prod-1", "m1"),
		[]storage.Machine{testMachine("m1")},
		nil, nil, committed,
		day(t, "2026-03-02 09:00"),
		7,
	)

	assert.False(t, feasible)
	assert.Nil(t, suggested)
}

func TestCheckFeasibility_BadDeliveryDate(t *testing.T) {
	po := storage.PurchaseOrder{
		ID: "po-new", PONumber: "SO-100", ProductID: "prod-1",
		Quantity: 10, DeliveryDate: "как-нибудь потом",
	}

	feasible, suggested := CheckFeasibility(
		po,
		testProduct("prod-1", "m1"),
		[]storage.Machine{testMachine("m1")},
		nil, nil, nil,
		day(t, "2026-03-02 09:00"),
		0,
	)

	assert.False(t, feasible)
	assert.Nil(t, suggested)
}

func TestNextFeasibleDates(t *testing.T) {
	po := storage.PurchaseOrder{
		ID: "po-new", PONumber: "SO-100", ProductID: "prod-1",
		Quantity: 48, DeliveryDate: "2026-03-01",
	}

	dates := NextFeasibleDates(
		po,
		testProduct("prod-1", "m1"),
		[]storage.Machine{testMachine("m1")},
		nil, nil, nil,
		day(t, "2026-03-02 09:00"),
		3,
	)

	// завершение в понедельник 17:00 — достижимы все даты со 2 марта
	assert.Equal(t, []string{"2026-03-02", "2026-03-03", "2026-03-04"}, dates)
}
