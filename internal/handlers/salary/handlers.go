package salary

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/evn/eom_salary/internal/pkg/response"
	"github.com/evn/eom_salary/internal/repositories"
	salaryService "github.com/evn/eom_salary/internal/services/salary"
)

// GetSalaryHandler отдает помесячные строки зарплаты
func GetSalaryHandler(repo *repositories.SalaryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines, err := repo.ListMonthly()
		if err != nil {
			log.Printf("Ошибка чтения salary_inner: %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, lines)
	}
}

// GetShiftDetailsHandler отдает посменную детализацию, опционально по работнику
func GetShiftDetailsHandler(repo *repositories.SalaryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workerID := 0
		if raw := r.URL.Query().Get("worker_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				response.RespondWithError(w, http.StatusBadRequest, "Неверный worker_id")
				return
			}
			workerID = id
		}

		details, err := repo.ListShiftDetails(workerID)
		if err != nil {
			log.Printf("Ошибка чтения salary_outer_1: %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}

		type detailView struct {
			Month          string  `json:"month"`
			Date           string  `json:"date"`
			WorkerID       int     `json:"worker_id"`
			WorkerUsername string  `json:"worker_username"`
			WorkerNickname string  `json:"worker_nickname"`
			StartTime      string  `json:"start_time"`
			FinishTime     string  `json:"finish_time"`
			DistanceKm     float64 `json:"distance_km"`
			WorkedSeconds  int     `json:"worked_seconds"`
			Worked         string  `json:"worked"`
			HourlyRate     float64 `json:"hourly_rate"`
		}
		views := make([]detailView, 0, len(details))
		for _, d := range details {
			views = append(views, detailView{
				Month:          d.Month.Format("2006-01-02"),
				Date:           d.Date.Format("2006-01-02"),
				WorkerID:       d.WorkerID,
				WorkerUsername: d.WorkerUsername,
				WorkerNickname: d.WorkerNickname,
				StartTime:      d.StartTime.Format(time.RFC3339),
				FinishTime:     d.FinishTime.Format(time.RFC3339),
				DistanceKm:     d.DistanceKm,
				WorkedSeconds:  d.WorkedSeconds,
				Worked:         response.FormatDuration(d.WorkedSeconds),
				HourlyRate:     d.HourlyRate,
			})
		}
		response.RespondWithJSON(w, http.StatusOK, views)
	}
}

// RunHandler запускает расчет в фоне. Если предыдущий расчет еще
// идет, фоновый запуск отклонится блокировкой в Redis.
func RunHandler(svc *salaryService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		go func() {
			if err := svc.Run(context.Background()); err != nil {
				log.Printf("❌ Расчет зарплаты завершился с ошибкой: %v", err)
			}
		}()
		response.RespondWithJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
	}
}

// StatusHandler отдает статус последнего расчета
func StatusHandler(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := salaryService.LastStatus(r.Context(), redisClient)
		if err != nil {
			log.Printf("Ошибка чтения статуса: %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Redis error")
			return
		}
		if status == nil {
			response.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "never_run"})
			return
		}
		response.RespondWithJSON(w, http.StatusOK, status)
	}
}
