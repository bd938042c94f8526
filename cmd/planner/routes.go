package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getalerts "react-golang/http-server/alerts/get"
	feasibility "react-golang/http-server/feasibility/check"
	generate_excel "react-golang/http-server/generate-report/generate-excel"
	getmaster "react-golang/http-server/masterdata/get"
	savemaster "react-golang/http-server/masterdata/save"
	overtime "react-golang/http-server/overtime/request"
	"react-golang/http-server/schedule/generate"
	getschedule "react-golang/http-server/schedule/get"
	"react-golang/http-server/schedule/update"
	"react-golang/internal/config"
	"react-golang/internal/middleware/auth"
	generate_excel2 "react-golang/internal/service/generate-excel"
	"react-golang/internal/service/planner"
	"react-golang/internal/storage/memory"
)

func routes(cfg config.Config, log *slog.Logger, storage *memory.Store, service *planner.PlannerService, genService *generate_excel2.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"}, // Разрешаем запросы с фронтенда
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	//ip пользователя
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// расписание
	router.Get("/api/schedule", getschedule.GetSchedule(log, storage))
	router.Post("/api/schedule/generate", generate.GenerateSchedule(log, service))
	router.Post("/api/schedule/resolve", generate.ResolveConflicts(log, service))
	router.Put("/api/schedule/{id}/status", update.UpdateItemStatus(log, storage))
	router.Put("/api/schedule/{id}/mode", update.ToggleMode(log, storage))
	router.Put("/api/schedule/{id}/notes", update.UpdateNotes(log, storage))
	router.Put("/api/schedule/{id}/machine", update.Redistribute(log, storage))
	router.Post("/api/schedule/{id}/overtime", overtime.RequestOvertime(log, storage, service.Policy()))

	// проверка выполнимости до создания заказа
	router.Post("/api/feasibility", feasibility.CheckFeasibility(log, service))

	// предупреждения
	router.Get("/api/alerts", getalerts.GetAlerts(log, service))

	// справочники
	router.Get("/api/orders", getmaster.GetOrders(log, storage))
	router.Get("/api/products", getmaster.GetProducts(log, storage))
	router.Get("/api/machines", getmaster.GetMachines(log, storage))
	router.Get("/api/shifts", getmaster.GetShifts(log, storage))
	router.Get("/api/holidays", getmaster.GetHolidays(log, storage))
	router.Get("/api/holidays/export", getmaster.ExportHolidaysCSV(log, storage))

	// генерация excel
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, genService))

	// правки справочников — под базовой авторизацией
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/orders", savemaster.SaveOrder(log, storage))
	adminRouter.Post("/products", savemaster.SaveProduct(log, storage))
	adminRouter.Post("/machines", savemaster.SaveMachine(log, storage))
	adminRouter.Put("/machines/{id}/status", savemaster.UpdateMachineStatus(log, storage))
	adminRouter.Post("/shifts", savemaster.SaveShift(log, storage))
	adminRouter.Put("/holidays", savemaster.SetHolidays(log, storage))
	adminRouter.Post("/holidays/import", savemaster.ImportHolidaysCSV(log, storage))

	router.Mount("/api/admin", adminRouter)

	// Статика, react. Папки может не быть — тогда API работает без фронтенда.
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("Папка фронтенда не найдена", "path", frontendDir)
		return router
	}

	//Отдаём статические файлы: assets/, js/, css/, img/ и т.д.
	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	//SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
