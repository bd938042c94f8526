package scheduling

import (
	"time"

	"react-golang/internal/storage"
)

const DefaultProbeDays = 30

// CheckFeasibility отвечает, успевает ли гипотетический заказ к своей
// дате поставки при текущей загрузке. Заказ кладётся поверх
// зафиксированного расписания, ничего в нём не меняя. Если не успевает —
// перебираем даты вперёд (не дальше horizonDays) и возвращаем первую
// достижимую.
func CheckFeasibility(
	po storage.PurchaseOrder,
	product storage.Product,
	machines []storage.Machine,
	shifts []storage.Shift,
	holidays []string,
	committed []storage.ScheduleItem,
	now time.Time,
	horizonDays int,
) (bool, *string) {
	if horizonDays <= 0 {
		horizonDays = DefaultProbeDays
	}

	p := newPlanner(PlanInput{
		Products: []storage.Product{product},
		Machines: machines,
		Shifts:   shifts,
		Holidays: holidays,
		Now:      now,
	})
	p.seedCursors(committed)

	_, _, finalEnd := p.placeOrder(po)
	if finalEnd.IsZero() {
		// разложить нечего либо конфигурация битая — судить не о чем
		return false, nil
	}

	deadline, err := po.DeliveryDeadline()
	if err != nil {
		return false, nil
	}
	if !finalEnd.After(deadline) {
		return true, nil
	}

	base, _ := time.Parse("2006-01-02", po.DeliveryDate)
	for d := 1; d <= horizonDays; d++ {
		candidate := base.AddDate(0, 0, d)
		candidateEnd := candidate.Add(24*time.Hour - time.Second)
		if !finalEnd.After(candidateEnd) {
			s := candidate.Format("2006-01-02")
			return false, &s
		}
	}
	return false, nil
}

// NextFeasibleDates — несколько ближайших достижимых дат подряд,
// для выпадашки в конфликт-окне.
func NextFeasibleDates(
	po storage.PurchaseOrder,
	product storage.Product,
	machines []storage.Machine,
	shifts []storage.Shift,
	holidays []string,
	committed []storage.ScheduleItem,
	now time.Time,
	count int,
) []string {
	if count <= 0 {
		count = 3
	}
	base, err := time.Parse("2006-01-02", po.DeliveryDate)
	if err != nil {
		return nil
	}

	var dates []string
	probe := po
	for d := 1; d <= DefaultProbeDays && len(dates) < count; d++ {
		probe.DeliveryDate = base.AddDate(0, 0, d).Format("2006-01-02")
		feasible, _ := CheckFeasibility(probe, product, machines, shifts, holidays, committed, now, 1)
		if feasible {
			dates = append(dates, probe.DeliveryDate)
		}
	}
	return dates
}
