package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"react-golang/internal/service/scheduling"
	"react-golang/internal/storage"
)

var ErrNotFound = errors.New("запись не найдена")

// Store — снимок данных планирования в памяти: плоские карты по id
// вместо вложенных массивов. Движок чистый, вся синхронизация здесь.
type Store struct {
	mu sync.RWMutex

	orders   map[string]storage.PurchaseOrder
	products map[string]storage.Product
	machines map[string]storage.Machine
	shifts   map[string]storage.Shift
	holidays []string
	// расписание заменяется целиком, поэлементных патчей при генерации нет
	items map[string]storage.ScheduleItem
}

func New() *Store {
	return &Store{
		orders:   make(map[string]storage.PurchaseOrder),
		products: make(map[string]storage.Product),
		machines: make(map[string]storage.Machine),
		shifts:   make(map[string]storage.Shift),
		items:    make(map[string]storage.ScheduleItem),
	}
}

// --- заказы ---

func (s *Store) ListOrders(ctx context.Context) ([]storage.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]storage.PurchaseOrder, 0, len(s.orders))
	for _, po := range s.orders {
		out = append(out, po)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SaveOrder(ctx context.Context, po storage.PurchaseOrder) error {
	const op = "storage.memory.SaveOrder"
	if po.ID == "" {
		return fmt.Errorf("%s: пустой id заказа", op)
	}
	if po.Quantity <= 0 {
		return fmt.Errorf("%s: количество должно быть больше нуля", op)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[po.ID] = po
	return nil
}

func (s *Store) UpdateOrderDeliveryDate(ctx context.Context, id, date string) error {
	const op = "storage.memory.UpdateOrderDeliveryDate"
	s.mu.Lock()
	defer s.mu.Unlock()
	po, ok := s.orders[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	po.DeliveryDate = date
	s.orders[id] = po
	return nil
}

// --- изделия ---

func (s *Store) ListProducts(ctx context.Context) ([]storage.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]storage.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SaveProduct(ctx context.Context, p storage.Product) error {
	const op = "storage.memory.SaveProduct"
	if p.ID == "" {
		return fmt.Errorf("%s: пустой id изделия", op)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
	return nil
}

// --- станки ---

func (s *Store) ListMachines(ctx context.Context) ([]storage.Machine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]storage.Machine, 0, len(s.machines))
	for _, m := range s.machines {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SaveMachine пересчитывает рабочие часы из окна смены при каждом
// изменении записи — поле не доверяется вызывающему.
func (s *Store) SaveMachine(ctx context.Context, m storage.Machine) error {
	const op = "storage.memory.SaveMachine"
	if m.ID == "" {
		return fmt.Errorf("%s: пустой id станка", op)
	}
	m.WorkingHours = scheduling.MachineWindow(m).WorkingHours()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machines[m.ID] = m
	return nil
}

func (s *Store) UpdateMachineStatus(ctx context.Context, id, status string) error {
	const op = "storage.memory.UpdateMachineStatus"
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.machines[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	m.Status = status
	s.machines[id] = m
	return nil
}

// --- смены ---

func (s *Store) ListShifts(ctx context.Context) ([]storage.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]storage.Shift, 0, len(s.shifts))
	for _, sh := range s.shifts {
		out = append(out, sh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SaveShift(ctx context.Context, sh storage.Shift) error {
	const op = "storage.memory.SaveShift"
	if sh.ID == "" {
		return fmt.Errorf("%s: пустой id смены", op)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shifts[sh.ID] = sh
	return nil
}

// --- праздники ---

func (s *Store) GetHolidays(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.holidays))
	copy(out, s.holidays)
	return out, nil
}

func (s *Store) SetHolidays(ctx context.Context, holidays []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holidays = make([]string, len(holidays))
	copy(s.holidays, holidays)
	return nil
}

// --- расписание ---

func (s *Store) ListSchedule(ctx context.Context) ([]storage.ScheduleItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]storage.ScheduleItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.Before(out[j].StartDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ReplaceSchedule применяет новое расписание целиком — атомарно с точки
// зрения читателей, без чересполосицы старых и новых элементов.
func (s *Store) ReplaceSchedule(ctx context.Context, items []storage.ScheduleItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]storage.ScheduleItem, len(items))
	for _, it := range items {
		s.items[it.ID] = it
	}
	return nil
}

func (s *Store) GetScheduleItem(ctx context.Context, id string) (storage.ScheduleItem, error) {
	const op = "storage.memory.GetScheduleItem"
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return storage.ScheduleItem{}, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return it, nil
}

func (s *Store) SaveScheduleItem(ctx context.Context, it storage.ScheduleItem) error {
	const op = "storage.memory.SaveScheduleItem"
	if it.ID == "" {
		return fmt.Errorf("%s: пустой id элемента", op)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[it.ID] = it
	return nil
}

func (s *Store) AppendOvertime(ctx context.Context, itemID string, rec storage.OvertimeRecord) error {
	const op = "storage.memory.AppendOvertime"
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[itemID]
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	it.OvertimeRecords = append(it.OvertimeRecords, rec)
	it.PlannedOvertimeHours += rec.PlannedOvertimeHours
	s.items[itemID] = it
	return nil
}
