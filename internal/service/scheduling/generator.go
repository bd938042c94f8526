package scheduling

import (
	"fmt"
	"sort"
	"time"

	"react-golang/internal/storage"
)

type PlanInput struct {
	Orders   []storage.PurchaseOrder
	Products []storage.Product
	Machines []storage.Machine
	Shifts   []storage.Shift
	Holidays []string
	// якорь генерации; нулевое значение = time.Now()
	Now time.Time
}

// planner держит индексы и курсоры занятости станков на один проход.
type planner struct {
	products map[string]*storage.Product
	machines map[string]*storage.Machine
	shift    *storage.Shift
	holidays map[string]bool
	// станок -> момент, с которого он свободен
	cursors map[string]time.Time
	anchor  time.Time
}

func newPlanner(in PlanInput) *planner {
	p := &planner{
		products: make(map[string]*storage.Product, len(in.Products)),
		machines: make(map[string]*storage.Machine, len(in.Machines)),
		shift:    storage.ActiveShift(in.Shifts),
		holidays: storage.HolidaySet(in.Holidays),
		cursors:  make(map[string]time.Time, len(in.Machines)),
		anchor:   in.Now,
	}
	if p.anchor.IsZero() {
		p.anchor = time.Now()
	}
	for i := range in.Products {
		p.products[in.Products[i].ID] = &in.Products[i]
	}
	for i := range in.Machines {
		p.machines[in.Machines[i].ID] = &in.Machines[i]
	}
	return p
}

// seedCursors занимает станки уже зафиксированным расписанием —
// гипотетический заказ кладётся поверх, ничего не двигая.
func (p *planner) seedCursors(committed []storage.ScheduleItem) {
	for _, it := range committed {
		if it.EndDate.After(p.cursors[it.MachineID]) {
			p.cursors[it.MachineID] = it.EndDate
		}
	}
}

// AllocatedTime: наладка + количество * цикл, делённые на эффективность.
// Станок на 50% работает вдвое дольше.
func AllocatedTime(step storage.ProcessStep, quantity int, efficiency float64) float64 {
	total := step.SetupTime + float64(quantity)*step.CycleTimePerPart
	if total < 0 {
		total = 0
	}
	if efficiency <= 0 {
		efficiency = 100
	}
	return total / (efficiency / 100)
}

// NextProcessStart — момент, раньше которого следующий этап не стартует.
func NextProcessStart(prevEnd time.Time, delay *storage.ProcessDelay) time.Time {
	if delay == nil {
		return prevEnd
	}
	switch delay.Type {
	case storage.DelayFixed:
		return prevEnd.Add(minutesDur(delay.DelayMinutes))
	default:
		// immediate и after_batch: окно этапа и так закрывается всей партией
		return prevEnd
	}
}

func machineHealthy(m *storage.Machine) bool {
	switch m.Status {
	case storage.MachineBreakdown, storage.MachineMaintenance, storage.MachineInactive:
		return false
	}
	return true
}

// chooseMachine: основной станок, пока он жив и свободен к нужному
// моменту; иначе первый доступный из запасных; иначе основной как есть —
// перегруз сигналим, генерацию не блокируем.
func (p *planner) chooseMachine(step storage.ProcessStep, need time.Time) *storage.Machine {
	free := func(m *storage.Machine) bool {
		return !p.cursors[m.ID].After(need)
	}

	primary := p.machines[step.MachineID]
	if primary != nil && machineHealthy(primary) && free(primary) {
		return primary
	}
	for _, id := range step.PreferredMachines {
		if m := p.machines[id]; m != nil && machineHealthy(m) && free(m) {
			return m
		}
	}
	if primary != nil {
		return primary
	}
	// основной не разрешился — берём хоть какой-то запасной
	for _, id := range step.PreferredMachines {
		if m := p.machines[id]; m != nil {
			return m
		}
	}
	return nil
}

func unresolvedConflict(po storage.PurchaseOrder, machineID string, seq int) storage.ScheduleConflict {
	return storage.ScheduleConflict{
		Type:          storage.ConflictUnresolvedMachine,
		NewPO:         po,
		ConflictingPO: po,
		MachineID:     machineID,
		UserMessage: fmt.Sprintf(
			"Process step %d of order %s references unknown machine %q and was skipped.",
			seq, po.PONumber, machineID),
	}
}

// placeOrder раскладывает этапы одного заказа, двигая курсоры станков.
// Возвращает элементы расписания, конфликты конфигурации и момент
// завершения последнего этапа.
func (p *planner) placeOrder(po storage.PurchaseOrder) ([]storage.ScheduleItem, []storage.ScheduleConflict, time.Time) {
	product := p.products[po.ProductID]
	if product == nil {
		return nil, []storage.ScheduleConflict{{
			Type:          storage.ConflictUnresolvedMachine,
			NewPO:         po,
			ConflictingPO: po,
			UserMessage: fmt.Sprintf(
				"Order %s references unknown product %q and was skipped.",
				po.PONumber, po.ProductID),
		}}, time.Time{}
	}

	var (
		items     []storage.ScheduleItem
		conflicts []storage.ScheduleConflict
		prevEnd   time.Time
		prevDelay *storage.ProcessDelay
	)

	for _, step := range product.StepsInOrder() {
		base := p.anchor
		if !prevEnd.IsZero() {
			if s := NextProcessStart(prevEnd, prevDelay); s.After(base) {
				base = s
			}
		}
		prevDelay = step.NextProcessDelay

		if _, ok := p.machines[step.MachineID]; !ok {
			conflicts = append(conflicts, unresolvedConflict(po, step.MachineID, step.Sequence))
		}

		machine := p.chooseMachine(step, base)
		if machine == nil {
			// этап пропущен: нулевая длительность, prevEnd не двигаем
			continue
		}

		need := base
		if cur := p.cursors[machine.ID]; cur.After(need) {
			need = cur
		}

		alloc := AllocatedTime(step, po.Quantity, machine.Efficiency)
		start, end := NextWorkingWindow(MachineWindow(*machine), p.shift, p.holidays, need, alloc)
		p.cursors[machine.ID] = end

		items = append(items, storage.ScheduleItem{
			ID:             fmt.Sprintf("%s-step-%d", po.ID, step.Sequence),
			POID:           po.ID,
			ProductID:      product.ID,
			MachineID:      machine.ID,
			ProcessStep:    step.Sequence,
			Quantity:       po.Quantity,
			AllocatedTime:  alloc,
			StartDate:      start,
			EndDate:        end,
			Status:         storage.StatusScheduled,
			SchedulingMode: storage.ModeAuto,
			Efficiency:     machine.Efficiency,
			QualityScore:   100,
		})
		prevEnd = end
	}

	return items, conflicts, prevEnd
}

// Generate — полный проход планировщика: заказы по приоритету и дате
// поставки, этапы по порядку, поверх — сверка с обещанными датами.
// Чистая функция над снимком данных, ничего не мутирует.
func Generate(in PlanInput) ([]storage.ScheduleItem, []storage.ScheduleConflict) {
	p := newPlanner(in)

	orders := make([]storage.PurchaseOrder, len(in.Orders))
	copy(orders, in.Orders)
	sort.SliceStable(orders, func(i, j int) bool {
		ri, rj := storage.PriorityRank(orders[i].Priority), storage.PriorityRank(orders[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return orders[i].DeliveryDate < orders[j].DeliveryDate
	})

	var (
		schedule  []storage.ScheduleItem
		conflicts []storage.ScheduleConflict
	)

	for _, po := range orders {
		items, cfs, finalEnd := p.placeOrder(po)
		schedule = append(schedule, items...)
		conflicts = append(conflicts, cfs...)

		if finalEnd.IsZero() {
			continue
		}
		deadline, err := po.DeliveryDeadline()
		if err != nil {
			// заказ без вменяемой даты поставки сверять не с чем
			continue
		}
		if finalEnd.After(deadline) {
			last := schedule[len(schedule)-1]
			conflicts = append(conflicts, storage.ScheduleConflict{
				Type:             storage.ConflictDeliveryOverrun,
				NewPO:            po,
				ConflictingPO:    po,
				MachineID:        last.MachineID,
				SuggestedEndDate: finalEnd,
				UserMessage: fmt.Sprintf(
					"Order %s cannot be completed by %s. Earliest possible completion is %s.",
					po.PONumber, po.DeliveryDate, finalEnd.Format("2006-01-02")),
			})
		}
	}

	SortConflicts(conflicts)
	return schedule, conflicts
}

// MergeCommitted: перегенерация не трогает то, что уже в работе или
// завершено — их времена и статус переносятся в новое расписание как есть.
func MergeCommitted(fresh, prev []storage.ScheduleItem) []storage.ScheduleItem {
	prevByID := make(map[string]storage.ScheduleItem, len(prev))
	for _, it := range prev {
		prevByID[it.ID] = it
	}

	out := make([]storage.ScheduleItem, 0, len(fresh))
	for _, n := range fresh {
		if p, ok := prevByID[n.ID]; ok &&
			(p.Status == storage.StatusInProgress || p.Status == storage.StatusCompleted) {
			n.Status = p.Status
			n.StartDate = p.StartDate
			n.EndDate = p.EndDate
			n.ActualStartTime = p.ActualStartTime
			n.ActualEndTime = p.ActualEndTime
			n.Progress = p.Progress
			n.SchedulingMode = p.SchedulingMode
			n.Notes = p.Notes
			n.OvertimeRecords = p.OvertimeRecords
			n.PlannedOvertimeHours = p.PlannedOvertimeHours
			n.ActionHistory = p.ActionHistory
		}
		out = append(out, n)
	}
	return out
}
