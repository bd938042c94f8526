package scheduling

import (
	"fmt"
	"time"

	"react-golang/internal/storage"
)

type AlertInput struct {
	Orders   []storage.PurchaseOrder
	Products []storage.Product
	Machines []storage.Machine
	Items    []storage.ScheduleItem
	Now      time.Time
}

const qualityThreshold = 70

// GenerateAlerts сканирует живое состояние и выдаёт типизированные
// предупреждения: срыв поставки, поломка станка, перегруз, брак.
// Важность растёт с величиной просрочки/перегруза.
func GenerateAlerts(in AlertInput) []storage.Alert {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	var alerts []storage.Alert

	itemsByPO := make(map[string][]storage.ScheduleItem)
	for _, it := range in.Items {
		itemsByPO[it.POID] = append(itemsByPO[it.POID], it)
	}

	// срыв обещанной даты
	for _, po := range in.Orders {
		delayed := false
		for _, it := range itemsByPO[po.ID] {
			if AutoStatus(it, now) == storage.StatusDelayed {
				delayed = true
				break
			}
		}
		if !delayed {
			continue
		}

		severity := storage.SeverityMedium
		if deadline, err := po.DeliveryDeadline(); err == nil {
			late := now.Sub(deadline).Hours() / 24
			switch {
			case late > 7:
				severity = storage.SeverityCritical
			case late > 3:
				severity = storage.SeverityHigh
			}
		}
		alerts = append(alerts, storage.Alert{
			ID:               "delivery-risk-" + po.ID,
			Type:             storage.AlertDeliveryRisk,
			Severity:         severity,
			Message:          fmt.Sprintf("Order %s is running late and may miss its delivery date %s.", po.PONumber, po.DeliveryDate),
			AffectedEntities: []string{po.ID},
			SuggestedActions: []string{"reschedule", "redistribute"},
			CreatedAT:        now,
		})
	}

	for _, m := range in.Machines {
		// поломка
		if m.Status == storage.MachineBreakdown {
			severity := storage.SeverityHigh
			if Load(m.ID, in.Items) > 0 {
				// на станке висят работы — совсем плохо
				severity = storage.SeverityCritical
			}
			alerts = append(alerts, storage.Alert{
				ID:               "breakdown-" + m.ID,
				Type:             storage.AlertMachineBreakdown,
				Severity:         severity,
				Message:          fmt.Sprintf("Machine %s is down. Scheduled work must be redistributed.", m.MachineName),
				AffectedEntities: []string{m.ID},
				SuggestedActions: []string{"maintenance", "redistribute"},
				CreatedAT:        now,
			})
		}

		// перегруз
		if Overloaded(m, in.Items) {
			load, capacity := Load(m.ID, in.Items), Capacity(m)
			ratio := load / capacity
			severity := storage.SeverityMedium
			switch {
			case ratio >= 1.5:
				severity = storage.SeverityCritical
			case ratio >= 1.2:
				severity = storage.SeverityHigh
			}
			alerts = append(alerts, storage.Alert{
				ID:       "overload-" + m.ID,
				Type:     storage.AlertCapacityOverload,
				Severity: severity,
				Message: fmt.Sprintf("Machine %s is overloaded: %.0f of %.0f minutes (%.0f%%).",
					m.MachineName, load, capacity, ratio*100),
				AffectedEntities: []string{m.ID},
				SuggestedActions: []string{"redistribute", "reschedule"},
				CreatedAT:        now,
			})
		}
	}

	// брак на этапах с контролем качества
	steps := qualityStepIndex(in.Products)
	for _, it := range in.Items {
		if AutoStatus(it, now) != storage.StatusCompleted {
			continue
		}
		if !steps[it.ProductID+"#"+itoa(it.ProcessStep)] {
			continue
		}
		if it.QualityScore >= qualityThreshold || it.QualityScore <= 0 {
			continue
		}
		severity := storage.SeverityMedium
		if it.QualityScore < 50 {
			severity = storage.SeverityHigh
		}
		alerts = append(alerts, storage.Alert{
			ID:               "quality-" + it.ID,
			Type:             storage.AlertQualityIssue,
			Severity:         severity,
			Message:          fmt.Sprintf("Quality score %.0f on step %d is below threshold.", it.QualityScore, it.ProcessStep),
			AffectedEntities: []string{it.ID, it.POID},
			SuggestedActions: []string{"reschedule"},
			CreatedAT:        now,
		})
	}

	return alerts
}

func qualityStepIndex(products []storage.Product) map[string]bool {
	idx := make(map[string]bool)
	for _, p := range products {
		for _, s := range p.ProcessFlow {
			if s.QualityCheck {
				idx[p.ID+"#"+itoa(s.Sequence)] = true
			}
		}
	}
	return idx
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
