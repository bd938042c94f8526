package planner

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"react-golang/internal/service/scheduling"
	"react-golang/internal/storage"
)

type PlannerStorage interface {
	ListOrders(ctx context.Context) ([]storage.PurchaseOrder, error)
	ListProducts(ctx context.Context) ([]storage.Product, error)
	ListMachines(ctx context.Context) ([]storage.Machine, error)
	ListShifts(ctx context.Context) ([]storage.Shift, error)
	GetHolidays(ctx context.Context) ([]string, error)
	ListSchedule(ctx context.Context) ([]storage.ScheduleItem, error)
	ReplaceSchedule(ctx context.Context, items []storage.ScheduleItem) error
	UpdateOrderDeliveryDate(ctx context.Context, id, date string) error
}

// PlannerService гоняет чистый движок над снимком хранилища.
// Снимок читается одним махом, результат применяется целиком.
type PlannerService struct {
	storage PlannerStorage
	policy  scheduling.OvertimePolicy
	horizon int
	nowFn   func() time.Time
}

func NewPlannerService(storage PlannerStorage, policy scheduling.OvertimePolicy, horizonDays int) *PlannerService {
	if horizonDays <= 0 {
		horizonDays = scheduling.DefaultProbeDays
	}
	return &PlannerService{
		storage: storage,
		policy:  policy,
		horizon: horizonDays,
		nowFn:   time.Now,
	}
}

func (s *PlannerService) Policy() scheduling.OvertimePolicy {
	return s.policy
}

type snapshot struct {
	orders   []storage.PurchaseOrder
	products []storage.Product
	machines []storage.Machine
	shifts   []storage.Shift
	holidays []string
	items    []storage.ScheduleItem
}

func (s *PlannerService) snapshot(ctx context.Context) (snapshot, error) {
	const op = "service.planner.snapshot"

	var snap snapshot
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.orders, err = s.storage.ListOrders(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.products, err = s.storage.ListProducts(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.machines, err = s.storage.ListMachines(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.shifts, err = s.storage.ListShifts(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.holidays, err = s.storage.GetHolidays(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.items, err = s.storage.ListSchedule(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, fmt.Errorf("%s: ошибка чтения снимка: %w", op, err)
	}
	return snap, nil
}

type RegenerateResult struct {
	Schedule  []storage.ScheduleItem     `json:"schedule"`
	Conflicts []storage.ScheduleConflict `json:"conflicts"`
	// false = есть конфликты поставок, расписание не применено
	Applied bool `json:"applied"`
}

// Regenerate: полный проход генератора. Элементы в работе и завершённые
// переносятся как есть. При конфликтах обещанных дат новое расписание
// не применяется — конфликты отдаются пользователю на решение.
func (s *PlannerService) Regenerate(ctx context.Context) (RegenerateResult, error) {
	const op = "service.planner.Regenerate"

	snap, err := s.snapshot(ctx)
	if err != nil {
		return RegenerateResult{}, fmt.Errorf("%s: %w", op, err)
	}

	fresh, conflicts := scheduling.Generate(scheduling.PlanInput{
		Orders:   snap.orders,
		Products: snap.products,
		Machines: snap.machines,
		Shifts:   snap.shifts,
		Holidays: snap.holidays,
		Now:      s.nowFn(),
	})
	merged := scheduling.MergeCommitted(fresh, snap.items)

	res := RegenerateResult{Schedule: merged, Conflicts: conflicts}
	if len(scheduling.DeliveryConflicts(conflicts)) > 0 {
		return res, nil
	}

	if err := s.storage.ReplaceSchedule(ctx, merged); err != nil {
		return RegenerateResult{}, fmt.Errorf("%s: ошибка применения расписания: %w", op, err)
	}
	res.Applied = true
	return res, nil
}

// ResolveConflicts принимает новые обещанные даты и перегенерирует.
func (s *PlannerService) ResolveConflicts(ctx context.Context, dates map[string]string) (RegenerateResult, error) {
	const op = "service.planner.ResolveConflicts"

	for id, date := range dates {
		if err := s.storage.UpdateOrderDeliveryDate(ctx, id, date); err != nil {
			return RegenerateResult{}, fmt.Errorf("%s: заказ %s: %w", op, id, err)
		}
	}
	return s.Regenerate(ctx)
}

type FeasibilityResult struct {
	Feasible      bool    `json:"feasible"`
	SuggestedDate *string `json:"suggested_date,omitempty"`
}

// CheckFeasibility — гипотетический заказ поверх текущего расписания.
func (s *PlannerService) CheckFeasibility(ctx context.Context, po storage.PurchaseOrder) (FeasibilityResult, error) {
	const op = "service.planner.CheckFeasibility"

	snap, err := s.snapshot(ctx)
	if err != nil {
		return FeasibilityResult{}, fmt.Errorf("%s: %w", op, err)
	}

	var product *storage.Product
	for i := range snap.products {
		if snap.products[i].ID == po.ProductID {
			product = &snap.products[i]
			break
		}
	}
	if product == nil {
		return FeasibilityResult{}, fmt.Errorf("%s: изделие %q не найдено", op, po.ProductID)
	}

	feasible, suggested := scheduling.CheckFeasibility(
		po, *product, snap.machines, snap.shifts, snap.holidays, snap.items,
		s.nowFn(), s.horizon)
	return FeasibilityResult{Feasible: feasible, SuggestedDate: suggested}, nil
}

// Alerts — свежая сводка предупреждений по живому состоянию.
func (s *PlannerService) Alerts(ctx context.Context) ([]storage.Alert, error) {
	const op = "service.planner.Alerts"

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return scheduling.GenerateAlerts(scheduling.AlertInput{
		Orders:   snap.orders,
		Products: snap.products,
		Machines: snap.machines,
		Items:    snap.items,
		Now:      s.nowFn(),
	}), nil
}
