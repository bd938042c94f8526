package generate_excel

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"react-golang/internal/service/scheduling"
	"react-golang/internal/storage"
)

type GenerateExcelStorage interface {
	ListSchedule(ctx context.Context) ([]storage.ScheduleItem, error)
	ListOrders(ctx context.Context) ([]storage.PurchaseOrder, error)
	ListProducts(ctx context.Context) ([]storage.Product, error)
	ListMachines(ctx context.Context) ([]storage.Machine, error)
}

type GenerateExcelService struct {
	storage GenerateExcelStorage
}

func NewGenerateService(storage GenerateExcelStorage) *GenerateExcelService {
	return &GenerateExcelService{storage: storage}
}

type ScheduleFilter struct {
	From      time.Time
	To        time.Time
	MachineID string
	ProductID string
}

// GenerateExcel собирает отчёт по производственному расписанию:
// заказ, изделие, этап, станок, окно, статус на момент выгрузки.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, filter ScheduleFilter) ([]byte, error) {
	const op = "service.generate-excel.GenerateExcel"

	var (
		items    []storage.ScheduleItem
		orders   []storage.PurchaseOrder
		products []storage.Product
		machines []storage.Machine
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		items, err = g.storage.ListSchedule(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		orders, err = g.storage.ListOrders(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		products, err = g.storage.ListProducts(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		machines, err = g.storage.ListMachines(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: ошибка чтения данных: %w", op, err)
	}

	ordersByID := make(map[string]storage.PurchaseOrder, len(orders))
	for _, po := range orders {
		ordersByID[po.ID] = po
	}
	productsByID := make(map[string]storage.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}
	machinesByID := make(map[string]storage.Machine, len(machines))
	for _, m := range machines {
		machinesByID[m.ID] = m
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Production Schedule"
	f.SetSheetName("Sheet1", sheet)

	// --- СТИЛИ ---
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{
		"SO Number", "Product", "Part Number", "Process Step", "Machine",
		"Start Date", "End Date", "Quantity", "Allocated Time (min)",
		"Status", "Progress (%)", "Efficiency (%)", "Quality Score", "Notes",
	}
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)

	now := time.Now()
	rowNum := 1
	for _, it := range items {
		if filter.MachineID != "" && it.MachineID != filter.MachineID {
			continue
		}
		if filter.ProductID != "" && it.ProductID != filter.ProductID {
			continue
		}
		if !filter.From.IsZero() && it.StartDate.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && it.StartDate.After(filter.To) {
			continue
		}

		rowNum++
		po := ordersByID[it.POID]
		product := productsByID[it.ProductID]
		machine := machinesByID[it.MachineID]

		f.SetCellValue(sheet, cellName(1, rowNum), po.PONumber)
		f.SetCellValue(sheet, cellName(2, rowNum), product.ProductName)
		f.SetCellValue(sheet, cellName(3, rowNum), product.PartNumber)
		f.SetCellValue(sheet, cellName(4, rowNum), it.ProcessStep)
		f.SetCellValue(sheet, cellName(5, rowNum), machine.MachineName)
		f.SetCellValue(sheet, cellName(6, rowNum), it.StartDate.Format("02/01/2006 15:04"))
		f.SetCellValue(sheet, cellName(7, rowNum), it.EndDate.Format("02/01/2006 15:04"))
		f.SetCellValue(sheet, cellName(8, rowNum), it.Quantity)
		f.SetCellValue(sheet, cellName(9, rowNum), it.AllocatedTime)
		f.SetCellValue(sheet, cellName(10, rowNum), scheduling.AutoStatus(it, now))
		f.SetCellValue(sheet, cellName(11, rowNum), scheduling.Progress(it, now))
		f.SetCellValue(sheet, cellName(12, rowNum), it.Efficiency)
		f.SetCellValue(sheet, cellName(13, rowNum), it.QualityScore)
		f.SetCellValue(sheet, cellName(14, rowNum), it.Notes)
	}

	// Закрепляем шапку
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(sheet, "A", "N", 16)

	// второй лист — загрузка станков
	loadSheet := "Machine Load"
	f.NewSheet(loadSheet)
	loadHeaders := []string{
		"Machine", "Status", "Capacity (min/day)", "Total Load (min)",
		"Load In Period (min)", "Utilization (%)",
	}
	for i, name := range loadHeaders {
		f.SetCellValue(loadSheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(loadSheet, "A1", cellName(len(loadHeaders), 1), headerStyle)

	for i, m := range machines {
		row := i + 2
		f.SetCellValue(loadSheet, cellName(1, row), m.MachineName)
		f.SetCellValue(loadSheet, cellName(2, row), m.Status)
		f.SetCellValue(loadSheet, cellName(3, row), scheduling.Capacity(m))
		f.SetCellValue(loadSheet, cellName(4, row), scheduling.Load(m.ID, items))
		f.SetCellValue(loadSheet, cellName(5, row), scheduling.LoadInInterval(m.ID, items, filter.From, filter.To))
		f.SetCellValue(loadSheet, cellName(6, row), scheduling.Utilization(m, items))
	}
	f.SetColWidth(loadSheet, "A", "F", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
