package generate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"react-golang/internal/service/planner"
)

type ScheduleGenerator interface {
	Regenerate(ctx context.Context) (planner.RegenerateResult, error)
	ResolveConflicts(ctx context.Context, dates map[string]string) (planner.RegenerateResult, error)
}

// GenerateSchedule — полная перегенерация расписания. При конфликтах
// обещанных дат расписание не применяется, конфликты уходят на фронт.
func GenerateSchedule(log *slog.Logger, gen ScheduleGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.schedule.GenerateSchedule"

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		res, err := gen.Regenerate(ctx)
		if err != nil {
			log.Error("Ошибка генерации расписания", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("Расписание сгенерировано",
			slog.Int("items", len(res.Schedule)),
			slog.Int("conflicts", len(res.Conflicts)),
			slog.Bool("applied", res.Applied))

		render.JSON(w, r, res)
	}
}

// ResolveConflicts принимает решения пользователя по конфликтам:
// новые обещанные даты по заказам, затем перегенерация.
func ResolveConflicts(log *slog.Logger, gen ScheduleGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.schedule.ResolveConflicts"

		var req struct {
			// id заказа -> новая дата поставки YYYY-MM-DD
			Dates map[string]string `json:"dates"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}
		if len(req.Dates) == 0 {
			http.Error(w, "Нет дат для применения", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		res, err := gen.ResolveConflicts(ctx, req.Dates)
		if err != nil {
			log.Error("Ошибка применения дат", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, res)
	}
}
