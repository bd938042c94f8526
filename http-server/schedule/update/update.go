package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"react-golang/internal/service/scheduling"
	"react-golang/internal/storage"
)

type ScheduleUpdater interface {
	GetScheduleItem(ctx context.Context, id string) (storage.ScheduleItem, error)
	SaveScheduleItem(ctx context.Context, it storage.ScheduleItem) error
}

var manualStatuses = map[string]bool{
	storage.StatusScheduled:  true,
	storage.StatusInProgress: true,
	storage.StatusCompleted:  true,
	storage.StatusDelayed:    true,
	storage.StatusPaused:     true,
}

// UpdateItemStatus — ручная смена статуса оператором, с журналом.
func UpdateItemStatus(log *slog.Logger, upd ScheduleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.schedule.UpdateItemStatus"

		id := chi.URLParam(r, "id")

		var req struct {
			Status string `json:"status"`
			User   string `json:"user"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}
		if !manualStatuses[req.Status] {
			http.Error(w, "Недопустимый статус", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		it, err := upd.GetScheduleItem(ctx, id)
		if err != nil {
			http.Error(w, "Элемент не найден", http.StatusNotFound)
			return
		}

		it = scheduling.ApplyManualStatus(it, req.Status, req.User, time.Now())
		if err := upd.SaveScheduleItem(ctx, it); err != nil {
			log.Error("Ошибка обновления статуса", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка обновления", http.StatusInternalServerError)
			return
		}

		log.Info("Статус обновлён", slog.String("id", id), slog.String("status", req.Status))

		render.JSON(w, r, map[string]interface{}{
			"status":  "success",
			"item_id": id,
		})
	}
}

// ToggleMode переключает элемент между auto и manual.
func ToggleMode(log *slog.Logger, upd ScheduleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.schedule.ToggleMode"

		id := chi.URLParam(r, "id")

		var req struct {
			User string `json:"user"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		it, err := upd.GetScheduleItem(ctx, id)
		if err != nil {
			http.Error(w, "Элемент не найден", http.StatusNotFound)
			return
		}

		mode := storage.ModeManual
		if it.SchedulingMode == storage.ModeManual {
			mode = storage.ModeAuto
		}
		it = scheduling.ToggleSchedulingMode(it, mode, req.User, time.Now())

		if err := upd.SaveScheduleItem(ctx, it); err != nil {
			log.Error("Ошибка переключения режима", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка обновления", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"mode": mode})
	}
}

// UpdateNotes сохраняет заметку к элементу.
func UpdateNotes(log *slog.Logger, upd ScheduleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.schedule.UpdateNotes"

		id := chi.URLParam(r, "id")

		var req struct {
			Notes string `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		it, err := upd.GetScheduleItem(ctx, id)
		if err != nil {
			http.Error(w, "Элемент не найден", http.StatusNotFound)
			return
		}

		it.Notes = req.Notes
		if err := upd.SaveScheduleItem(ctx, it); err != nil {
			log.Error("Ошибка сохранения заметки", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка обновления", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"status": "success"})
	}
}

// Redistribute вручную переносит элемент на другой станок.
// Дальше пользователь сам запускает перегенерацию.
func Redistribute(log *slog.Logger, upd ScheduleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.schedule.Redistribute"

		id := chi.URLParam(r, "id")

		var req struct {
			MachineID string `json:"machine_id"`
			User      string `json:"user"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MachineID == "" {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		it, err := upd.GetScheduleItem(ctx, id)
		if err != nil {
			http.Error(w, "Элемент не найден", http.StatusNotFound)
			return
		}

		it.MachineID = req.MachineID
		it.ActionHistory = append(it.ActionHistory, storage.ActionRecord{
			Action:    "redistributed_to_" + req.MachineID,
			Timestamp: time.Now(),
			User:      req.User,
		})
		if err := upd.SaveScheduleItem(ctx, it); err != nil {
			log.Error("Ошибка переноса", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка обновления", http.StatusInternalServerError)
			return
		}

		log.Info("Элемент перенесён", slog.String("id", id), slog.String("machine", req.MachineID))

		render.JSON(w, r, map[string]interface{}{"status": "success"})
	}
}
