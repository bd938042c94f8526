package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"react-golang/internal/storage"
)

type MasterDataReader interface {
	ListOrders(ctx context.Context) ([]storage.PurchaseOrder, error)
	ListProducts(ctx context.Context) ([]storage.Product, error)
	ListMachines(ctx context.Context) ([]storage.Machine, error)
	ListShifts(ctx context.Context) ([]storage.Shift, error)
	GetHolidays(ctx context.Context) ([]string, error)
}

func GetOrders(log *slog.Logger, st MasterDataReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.GetOrders"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		orders, err := st.ListOrders(ctx)
		if err != nil {
			log.Error("Ошибка чтения заказов", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка чтения заказов", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, orders)
	}
}

func GetProducts(log *slog.Logger, st MasterDataReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.GetProducts"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		products, err := st.ListProducts(ctx)
		if err != nil {
			log.Error("Ошибка чтения изделий", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка чтения изделий", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, products)
	}
}

func GetMachines(log *slog.Logger, st MasterDataReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.GetMachines"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		machines, err := st.ListMachines(ctx)
		if err != nil {
			log.Error("Ошибка чтения станков", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка чтения станков", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, machines)
	}
}

func GetShifts(log *slog.Logger, st MasterDataReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.GetShifts"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		shifts, err := st.ListShifts(ctx)
		if err != nil {
			log.Error("Ошибка чтения смен", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка чтения смен", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, shifts)
	}
}

// GetHolidays отдаёт праздники разобранными записями, не сырыми строками.
func GetHolidays(log *slog.Logger, st MasterDataReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.GetHolidays"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		raw, err := st.GetHolidays(ctx)
		if err != nil {
			log.Error("Ошибка чтения праздников", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка чтения праздников", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, storage.ParseHolidays(raw))
	}
}

// ExportHolidaysCSV выгружает праздники файлом для фронтенда.
func ExportHolidaysCSV(log *slog.Logger, st MasterDataReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.masterdata.ExportHolidaysCSV"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		raw, err := st.GetHolidays(ctx)
		if err != nil {
			log.Error("Ошибка чтения праздников", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка чтения праздников", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=holidays.csv")
		_, _ = w.Write([]byte(storage.HolidaysToCSV(raw)))
	}
}
