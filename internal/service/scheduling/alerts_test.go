package scheduling

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"react-golang/internal/storage"
)

func alertOfType(alerts []storage.Alert, typ string) *storage.Alert {
	for i := range alerts {
		if alerts[i].Type == typ {
			return &alerts[i]
		}
	}
	return nil
}

func TestGenerateAlerts_DeliveryRisk(t *testing.T) {
	now := day(t, "2026-03-10 09:00")
	in := AlertInput{
		Orders: []storage.PurchaseOrder{
			{ID: "po-1", PONumber: "SO-001", DeliveryDate: "2026-03-08"},
		},
		Items: []storage.ScheduleItem{
			// окно прошло, завершение не зафиксировано — delayed
			{ID: "po-1-step-1", POID: "po-1", StartDate: day(t, "2026-03-06 09:00"), EndDate: day(t, "2026-03-06 17:00"), Status: storage.StatusScheduled, SchedulingMode: storage.ModeAuto},
		},
		Now: now,
	}

	alerts := GenerateAlerts(in)

	a := alertOfType(alerts, storage.AlertDeliveryRisk)
	assert.NotNil(t, a)
	assert.Equal(t, "delivery-risk-po-1", a.ID)
	assert.Equal(t, storage.SeverityMedium, a.Severity)
	assert.Contains(t, a.Message, "SO-001")
	assert.Equal(t, []string{"po-1"}, a.AffectedEntities)
}

// важность растёт с величиной просрочки
func TestGenerateAlerts_DeliveryRiskSeverity(t *testing.T) {
	in := AlertInput{
		Orders: []storage.PurchaseOrder{
			{ID: "po-1", PONumber: "SO-001", DeliveryDate: "2026-03-02"},
		},
		Items: []storage.ScheduleItem{
			{ID: "po-1-step-1", POID: "po-1", StartDate: day(t, "2026-03-02 09:00"), EndDate: day(t, "2026-03-02 17:00"), Status: storage.StatusScheduled, SchedulingMode: storage.ModeAuto},
		},
		Now: day(t, "2026-03-07 09:00"),
	}
	a := alertOfType(GenerateAlerts(in), storage.AlertDeliveryRisk)
	assert.Equal(t, storage.SeverityHigh, a.Severity)

	in.Now = day(t, "2026-03-15 09:00")
	a = alertOfType(GenerateAlerts(in), storage.AlertDeliveryRisk)
	assert.Equal(t, storage.SeverityCritical, a.Severity)
}

func TestGenerateAlerts_Breakdown(t *testing.T) {
	broken := testMachine("m1")
	broken.Status = storage.MachineBreakdown

	in := AlertInput{
		Machines: []storage.Machine{broken},
		Now:      day(t, "2026-03-02 09:00"),
	}

	a := alertOfType(GenerateAlerts(in), storage.AlertMachineBreakdown)
	assert.NotNil(t, a)
	// без назначенных работ — high
	assert.Equal(t, storage.SeverityHigh, a.Severity)

	in.Items = []storage.ScheduleItem{
		{ID: "po-1-step-1", POID: "po-1", MachineID: "m1", AllocatedTime: 120, StartDate: day(t, "2026-03-03 09:00"), EndDate: day(t, "2026-03-03 11:00"), Status: storage.StatusScheduled, SchedulingMode: storage.ModeAuto},
	}
	a = alertOfType(GenerateAlerts(in), storage.AlertMachineBreakdown)
	// на станке висят работы — critical
	assert.Equal(t, storage.SeverityCritical, a.Severity)
}

func TestGenerateAlerts_CapacityOverload(t *testing.T) {
	m := testMachine("m1")
	m.WorkingHours = 8 // 480 минут в сутки

	in := AlertInput{
		Machines: []storage.Machine{m},
		Items: []storage.ScheduleItem{
			{ID: "a", MachineID: "m1", AllocatedTime: 400, StartDate: day(t, "2026-03-03 09:00"), EndDate: day(t, "2026-03-03 16:00"), SchedulingMode: storage.ModeAuto},
			{ID: "b", MachineID: "m1", AllocatedTime: 200, StartDate: day(t, "2026-03-03 16:00"), EndDate: day(t, "2026-03-04 11:00"), SchedulingMode: storage.ModeAuto},
		},
		Now: day(t, "2026-03-02 09:00"),
	}

	a := alertOfType(GenerateAlerts(in), storage.AlertCapacityOverload)
	assert.NotNil(t, a)
	// 600 из 480 минут = 125%
	assert.Equal(t, storage.SeverityHigh, a.Severity)
	assert.Contains(t, a.Message, "125%")
}

func TestGenerateAlerts_QualityIssue(t *testing.T) {
	product := storage.Product{
		ID: "prod-1",
		ProcessFlow: []storage.ProcessStep{
			{ID: "s1", Sequence: 1, MachineID: "m1", QualityCheck: true},
			{ID: "s2", Sequence: 2, MachineID: "m1"},
		},
	}
	in := AlertInput{
		Products: []storage.Product{product},
		Items: []storage.ScheduleItem{
			{ID: "po-1-step-1", POID: "po-1", ProductID: "prod-1", ProcessStep: 1, Status: storage.StatusCompleted, QualityScore: 65, SchedulingMode: storage.ModeAuto},
			// этап без контроля качества не проверяется
			{ID: "po-1-step-2", POID: "po-1", ProductID: "prod-1", ProcessStep: 2, Status: storage.StatusCompleted, QualityScore: 40, SchedulingMode: storage.ModeAuto},
		},
		Now: day(t, "2026-03-02 09:00"),
	}

	alerts := GenerateAlerts(in)

	var quality []storage.Alert
	for _, a := range alerts {
		if a.Type == storage.AlertQualityIssue {
			quality = append(quality, a)
		}
	}
	assert.Len(t, quality, 1)
	assert.Equal(t, "quality-po-1-step-1", quality[0].ID)
	assert.Equal(t, storage.SeverityMedium, quality[0].Severity)
}

func TestGenerateAlerts_QualityIssueSeverity(t *testing.T) {
	product := storage.Product{
		ID: "prod-1",
		ProcessFlow: []storage.ProcessStep{
			{ID: "s1", Sequence: 1, MachineID: "m1", QualityCheck: true},
		},
	}
	in := AlertInput{
		Products: []storage.Product{product},
		Items: []storage.ScheduleItem{
			{ID: "po-1-step-1", POID: "po-1", ProductID: "prod-1", ProcessStep: 1, Status: storage.StatusCompleted, QualityScore: 45, SchedulingMode: storage.ModeAuto},
		},
		Now: day(t, "2026-03-02 09:00"),
	}

	a := alertOfType(GenerateAlerts(in), storage.AlertQualityIssue)
	assert.Equal(t, storage.SeverityHigh, a.Severity)
}

func TestGenerateAlerts_QuietFactory(t *testing.T) {
	in := AlertInput{
		Orders:   []storage.PurchaseOrder{{ID: "po-1", PONumber: "SO-001", DeliveryDate: "2026-03-20"}},
		Machines: []storage.Machine{testMachine("m1")},
		Items: []storage.ScheduleItem{
			{ID: "po-1-step-1", POID: "po-1", MachineID: "m1", AllocatedTime: 120, StartDate: day(t, "2026-03-03 09:00"), EndDate: day(t, "2026-03-03 11:00"), Status: storage.StatusScheduled, SchedulingMode: storage.ModeAuto},
		},
		Now: day(t, "2026-03-02 09:00"),
	}

	assert.Empty(t, GenerateAlerts(in))
}
