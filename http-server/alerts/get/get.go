package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"react-golang/internal/storage"
)

type AlertsProvider interface {
	Alerts(ctx context.Context) ([]storage.Alert, error)
}

type Resp struct {
	Alerts []storage.Alert `json:"alerts"`
	Counts map[string]int  `json:"counts"`
}

// GetAlerts — производственные предупреждения, пересчитываются на каждый запрос.
func GetAlerts(log *slog.Logger, provider AlertsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.alerts.GetAlerts"

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		alerts, err := provider.Alerts(ctx)
		if err != nil {
			log.Error("Ошибка расчёта предупреждений", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка расчёта предупреждений", http.StatusInternalServerError)
			return
		}

		if sev := r.URL.Query().Get("severity"); sev != "" {
			filtered := alerts[:0]
			for _, a := range alerts {
				if a.Severity == sev {
					filtered = append(filtered, a)
				}
			}
			alerts = filtered
		}

		counts := map[string]int{}
		for _, a := range alerts {
			counts[a.Severity]++
		}

		render.JSON(w, r, Resp{Alerts: alerts, Counts: counts})
	}
}
