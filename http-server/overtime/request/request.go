package request

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

type OvertimeStorage interface {
	GetScheduleItem(ctx context.Context, id string) (storage.ScheduleItem, error)
	ListShifts(ctx context.Context) ([]storage.Shift, error)
	AppendOvertime(ctx context.Context, itemID string, rec storage.OvertimeRecord) error
}

type Req struct {
	Hours  float64 `json:"hours"`
	Reason string  `json:"reason"`
}

// RequestOvertime — заявка на переработку по элементу графика.
// Политика и лимиты активной смены проверяются до записи.
func RequestOvertime(log *slog.Logger, st OvertimeStorage, policy scheduling.OvertimePolicy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.overtime.RequestOvertime"

		id := chi.URLParam(r, "id")

		var req Req
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		it, err := st.GetScheduleItem(ctx, id)
		if err != nil {
			http.Error(w, "Элемент не найден", http.StatusNotFound)
			return
		}

		shifts, err := st.ListShifts(ctx)
		if err != nil {
			log.Error("Ошибка чтения смен", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка чтения смен", http.StatusInternalServerError)
			return
		}
		shift := storage.ActiveShift(shifts)

		if !policy.IsAllowed(req.Hours, shift) {
			log.Info("Переработка отклонена политикой",
				slog.String("id", id),
				slog.Float64("hours", req.Hours),
			)
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]interface{}{
				"error":  "policy_violation",
				"reason": "Запрошенные часы превышают лимит переработки смены",
			})
			return
		}

		rec := policy.NewOvertimeRecord(it, shift, req.Hours, req.Reason, time.Now())
		if err := st.AppendOvertime(ctx, id, rec); err != nil {
			log.Error("Ошибка записи переработки", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка записи", http.StatusInternalServerError)
			return
		}

		log.Info("Переработка запланирована",
			slog.String("id", id),
			slog.Float64("hours", req.Hours),
			slog.Float64("multiplier", rec.CostMultiplier),
		)

		render.JSON(w, r, rec)
	}
}
