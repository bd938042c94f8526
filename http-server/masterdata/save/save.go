package save

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"react-golang/internal/storage"
)

type MasterDataWriter interface {
	SaveOrder(ctx context.Context, po storage.PurchaseOrder) error
	SaveProduct(ctx context.Context, p storage.Product) error
	SaveMachine(ctx context.Context, m storage.Machine) error
	UpdateMachineStatus(ctx context.Context, id, status string) error
	SaveShift(ctx context.Context, sh storage.Shift) error
	SetHolidays(ctx context.Context, holidays []string) error
}

var machineStatuses = map[string]bool{
	storage.MachineActive:      true,
	storage.MachineMaintenance: true,
	storage.MachineBreakdown:   true,
	storage.MachineInactive:    true,
}

func SaveOrder(log *slog.Logger, st MasterDataWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.SaveOrder"

		var po storage.PurchaseOrder
		if err := json.NewDecoder(r.Body).Decode(&po); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}
		if po.CreatedAT.IsZero() {
			po.CreatedAT = time.Now()
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.SaveOrder(ctx, po); err != nil {
			log.Error("Ошибка сохранения заказа", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка сохранения заказа", http.StatusBadRequest)
			return
		}

		log.Info("Заказ сохранён", slog.String("po", po.PONumber))

		render.JSON(w, r, map[string]interface{}{"status": "success", "id": po.ID})
	}
}

func SaveProduct(log *slog.Logger, st MasterDataWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.SaveProduct"

		var p storage.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}
		if len(p.ProcessFlow) == 0 {
			http.Error(w, "Изделие без маршрута", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.SaveProduct(ctx, p); err != nil {
			log.Error("Ошибка сохранения изделия", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка сохранения изделия", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, map[string]interface{}{"status": "success", "id": p.ID})
	}
}

func SaveMachine(log *slog.Logger, st MasterDataWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.SaveMachine"

		var m storage.Machine
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.SaveMachine(ctx, m); err != nil {
			log.Error("Ошибка сохранения станка", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка сохранения станка", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, map[string]interface{}{"status": "success", "id": m.ID})
	}
}

// UpdateMachineStatus — быстрый перевод станка в ремонт/поломку с планшета мастера.
func UpdateMachineStatus(log *slog.Logger, st MasterDataWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.UpdateMachineStatus"

		id := chi.URLParam(r, "id")

		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}
		if !machineStatuses[req.Status] {
			http.Error(w, "Недопустимый статус станка", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.UpdateMachineStatus(ctx, id, req.Status); err != nil {
			http.Error(w, "Станок не найден", http.StatusNotFound)
			return
		}

		log.Info("Статус станка обновлён", slog.String("id", id), slog.String("status", req.Status))

		render.JSON(w, r, map[string]interface{}{"status": "success"})
	}
}

func SaveShift(log *slog.Logger, st MasterDataWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.SaveShift"

		var sh storage.Shift
		if err := json.NewDecoder(r.Body).Decode(&sh); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.SaveShift(ctx, sh); err != nil {
			log.Error("Ошибка сохранения смены", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка сохранения смены", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, map[string]interface{}{"status": "success", "id": sh.ID})
	}
}

// SetHolidays принимает полный список записей и замещает им хранимый.
func SetHolidays(log *slog.Logger, st MasterDataWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.SetHolidays"

		var entries []storage.HolidayEntry
		if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		raw := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.Date == "" {
				continue
			}
			raw = append(raw, storage.SerializeHoliday(e))
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.SetHolidays(ctx, raw); err != nil {
			log.Error("Ошибка сохранения праздников", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка сохранения праздников", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"status": "success", "count": len(raw)})
	}
}

// ImportHolidaysCSV — загрузка csv-файла целиком в теле запроса.
func ImportHolidaysCSV(log *slog.Logger, st MasterDataWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.ImportHolidaysCSV"

		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			http.Error(w, "Ошибка чтения файла", http.StatusBadRequest)
			return
		}

		raw := storage.HolidaysFromCSV(string(body))
		if len(raw) == 0 {
			http.Error(w, "Пустой файл", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := st.SetHolidays(ctx, raw); err != nil {
			log.Error("Ошибка импорта праздников", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка импорта праздников", http.StatusInternalServerError)
			return
		}

		log.Info("Праздники импортированы", slog.Int("count", len(raw)))

		render.JSON(w, r, map[string]interface{}{"status": "success", "count": len(raw)})
	}
}
