package check

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"react-golang/internal/service/planner"
	"react-golang/internal/storage"
)

type FeasibilityChecker interface {
	CheckFeasibility(ctx context.Context, po storage.PurchaseOrder) (planner.FeasibilityResult, error)
}

// CheckFeasibility отвечает на вопрос "успеем ли к сроку" до создания заказа.
// Заказ приходит в теле целиком, в базу не пишется.
func CheckFeasibility(log *slog.Logger, checker FeasibilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.feasibility.CheckFeasibility"

		var po storage.PurchaseOrder
		if err := json.NewDecoder(r.Body).Decode(&po); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}
		if po.ProductID == "" || po.Quantity <= 0 || po.DeliveryDate == "" {
			http.Error(w, "Нужны product_id, quantity и delivery_date", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		res, err := checker.CheckFeasibility(ctx, po)
		if err != nil {
			log.Error("Ошибка проверки выполнимости", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка проверки", http.StatusInternalServerError)
			return
		}

		log.Info("Проверка выполнимости",
			slog.String("po", po.PONumber),
			slog.Bool("feasible", res.Feasible),
		)

		render.JSON(w, r, res)
	}
}
