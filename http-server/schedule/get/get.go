package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"react-golang/internal/service/scheduling"
	"react-golang/internal/storage"
)

type ScheduleReader interface {
	ListSchedule(ctx context.Context) ([]storage.ScheduleItem, error)
}

// элемент расписания + живые производные поля
type ItemView struct {
	storage.ScheduleItem
	AutoStatus  string  `json:"auto_status"`
	ProgressNow float64 `json:"progress_now"`
}

type Resp struct {
	Items []ItemView `json:"items"`
	Stats Stats      `json:"stats"`
}

type Stats struct {
	Total      int `json:"total"`
	Scheduled  int `json:"scheduled"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Delayed    int `json:"delayed"`
}

// GetSchedule отдаёт расписание с фильтрами по станку/изделию/статусу
// и сводкой. Статус и прогресс проецируются на момент запроса.
func GetSchedule(log *slog.Logger, reader ScheduleReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.schedule.GetSchedule"

		machineID := r.URL.Query().Get("machine_id")
		productID := r.URL.Query().Get("product_id")
		status := r.URL.Query().Get("status")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := reader.ListSchedule(ctx)
		if err != nil {
			log.Error("Ошибка чтения расписания", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		now := time.Now()
		resp := Resp{Items: []ItemView{}}
		for _, it := range items {
			if machineID != "" && it.MachineID != machineID {
				continue
			}
			if productID != "" && it.ProductID != productID {
				continue
			}
			auto := scheduling.AutoStatus(it, now)
			if status != "" && auto != status {
				continue
			}

			resp.Items = append(resp.Items, ItemView{
				ScheduleItem: it,
				AutoStatus:   auto,
				ProgressNow:  scheduling.Progress(it, now),
			})

			resp.Stats.Total++
			switch auto {
			case storage.StatusScheduled:
				resp.Stats.Scheduled++
			case storage.StatusInProgress:
				resp.Stats.InProgress++
			case storage.StatusCompleted:
				resp.Stats.Completed++
			case storage.StatusDelayed:
				resp.Stats.Delayed++
			}
		}

		render.JSON(w, r, resp)
	}
}
