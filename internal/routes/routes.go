package routes

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	salaryHandlers "github.com/evn/eom_salary/internal/handlers/salary"
	"github.com/evn/eom_salary/internal/pkg/response"
	"github.com/evn/eom_salary/internal/repositories"
	salaryService "github.com/evn/eom_salary/internal/services/salary"
)

// Setup инициализирует и возвращает настроенный маршрутизатор.
func Setup(database *sql.DB, redisClient *redis.Client, svc *salaryService.Service) *chi.Mux {
	salaryRepo := repositories.NewSalaryRepository(database)

	router := chi.NewRouter()
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Get("/api/salary", salaryHandlers.GetSalaryHandler(salaryRepo))
	router.Get("/api/salary/shifts", salaryHandlers.GetShiftDetailsHandler(salaryRepo))
	router.Get("/api/salary/status", salaryHandlers.StatusHandler(redisClient))
	router.Post("/api/salary/run", salaryHandlers.RunHandler(svc))

	return router
}
