package salary

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/evn/eom_salary/config"
	"github.com/evn/eom_salary/internal/feeds"
	"github.com/evn/eom_salary/internal/models"
	"github.com/evn/eom_salary/internal/payroll"
	"github.com/evn/eom_salary/internal/repositories"
)

const (
	runLockKey    = "salary:run_lock"
	lastStatusKey = "salary:last_run"
	runLockTTL    = 30 * time.Minute
)

// Feeds источники строк для расчета
type Feeds struct {
	Shifts func() ([][]string, error)
	Rates  func() ([][]string, error)
}

// RunStatus итог последнего расчета, хранится в Redis
type RunStatus struct {
	FinishedAt  time.Time `json:"finished_at"`
	Lines       int       `json:"lines"`
	Details     int       `json:"details"`
	DurationSec float64   `json:"duration_sec"`
	Error       string    `json:"error,omitempty"`
}

// Service ночной расчет зарплат: читает фиды и daily_shifts,
// считает помесячные строки и перезаписывает итоговые таблицы
type Service struct {
	cfg        *config.Config
	redis      *redis.Client
	feeds      Feeds
	dailyRepo  *repositories.DailyShiftRepository
	salaryRepo *repositories.SalaryRepository

	now func() time.Time
}

func NewService(cfg *config.Config, redisClient *redis.Client, f Feeds,
	dailyRepo *repositories.DailyShiftRepository, salaryRepo *repositories.SalaryRepository) *Service {
	return &Service{
		cfg:        cfg,
		redis:      redisClient,
		feeds:      f,
		dailyRepo:  dailyRepo,
		salaryRepo: salaryRepo,
		now:        time.Now,
	}
}

// Run выполняет полный расчет. Повторный запуск до завершения
// предыдущего отклоняется через блокировку в Redis.
func (s *Service) Run(ctx context.Context) error {
	ok, err := s.redis.SetNX(ctx, runLockKey, s.now().Format(time.RFC3339), runLockTTL).Result()
	if err != nil {
		return fmt.Errorf("ошибка получения блокировки: %w", err)
	}
	if !ok {
		return fmt.Errorf("расчет уже выполняется")
	}
	defer s.redis.Del(ctx, runLockKey)

	started := s.now()
	lines, details, err := s.compute(ctx)
	status := RunStatus{
		FinishedAt:  s.now(),
		Lines:       len(lines),
		Details:     len(details),
		DurationSec: s.now().Sub(started).Seconds(),
	}
	if err != nil {
		status.Error = err.Error()
		s.saveStatus(ctx, status)
		return err
	}

	// Обе таблицы публикуются в одной транзакции: либо новый расчет
	// целиком, либо прежний
	if err := s.salaryRepo.ReplaceAll(lines, details); err != nil {
		status.Error = err.Error()
		s.saveStatus(ctx, status)
		return err
	}
	log.Println("Таблицы salary_inner и salary_outer_1 успешно обновлены!")

	status.FinishedAt = s.now()
	s.saveStatus(ctx, status)
	return nil
}

func (s *Service) compute(ctx context.Context) ([]models.SalaryLine, []models.ShiftDetail, error) {
	shifts, err := s.loadShifts()
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Загружено смен из графика: %d", len(shifts))

	profiles, err := s.loadProfiles()
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Загружено строк ставок: %d", len(profiles))

	daily, err := s.dailyRepo.FetchSince(s.cfg.SinceDate)
	if err != nil {
		return nil, nil, err
	}

	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	addTime := s.now().Add(s.cfg.AddTimeShift)

	decadeBonuses := payroll.DecadeBonuses(daily, today)
	monthBonuses := make(map[payroll.MonthWorker]float64)
	for month, standings := range payroll.MonthStandings(daily, today) {
		for workerID, bonus := range payroll.MonthBonuses(standings) {
			monthBonuses[payroll.MonthWorker{Month: month, WorkerID: workerID}] = bonus
		}
	}

	// Смены группируются по месяцу и работнику; строки зарплаты
	// формируются только для пар, присутствующих в таблице ставок
	shiftsByKey := make(map[payroll.MonthWorker][]models.ShiftRecord)
	for _, sh := range shifts {
		k := payroll.MonthWorker{Month: sh.Month, WorkerID: sh.WorkerID}
		shiftsByKey[k] = append(shiftsByKey[k], sh)
	}

	var lines []models.SalaryLine
	var details []models.ShiftDetail
	consumed := make(map[payroll.MonthWorker]bool)

	for _, p := range profiles {
		k := payroll.MonthWorker{Month: p.Month, WorkerID: p.WorkerID}
		consumed[k] = true

		in := payroll.WorkerMonthInput{
			Profile:       p,
			Shifts:        shiftsByKey[k],
			DecadeBonuses: decadeBonuses[k],
			MonthBonus:    monthBonuses[k],
			AddTime:       addTime,
		}
		if _, ok := p.Scheme.(models.ThresholdScheme); ok {
			in.DailyEfficiency = payroll.DailyEfficiencies(daily, p.WorkerID)
		}

		line, det := payroll.ComputeWorkerMonth(in)
		lines = append(lines, line)
		details = append(details, det...)
	}

	// Смены работников без строки ставок попадают в детализацию с нулевой ставкой
	for k, shs := range shiftsByKey {
		if consumed[k] {
			continue
		}
		for _, sh := range shs {
			details = append(details, models.ShiftDetail{
				Month:          sh.Month,
				Date:           sh.Date,
				WorkerID:       sh.WorkerID,
				WorkerUsername: sh.WorkerUsername,
				WorkerNickname: sh.WorkerNickname,
				StartTime:      sh.StartTime,
				FinishTime:     sh.FinishTime,
				DistanceKm:     sh.DistanceKm,
				WorkedSeconds:  sh.WorkedSeconds,
				AddTime:        addTime,
			})
		}
	}

	return lines, details, nil
}

func (s *Service) loadShifts() ([]models.ShiftRecord, error) {
	rows, err := s.feeds.Shifts()
	if err != nil {
		return nil, err
	}
	raws, err := feeds.ParseShiftRows(rows)
	if err != nil {
		return nil, err
	}

	var out []models.ShiftRecord
	for _, raw := range raws {
		rec, err := payroll.NormalizeShift(raw)
		if err != nil {
			log.Printf("Пропускаю строку графика: %v", err)
			continue
		}
		if rec == nil || rec.Date.Before(s.cfg.SinceDate) {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (s *Service) loadProfiles() ([]models.RateProfile, error) {
	rows, err := s.feeds.Rates()
	if err != nil {
		return nil, err
	}
	profiles, err := feeds.ParseRateRows(rows)
	if err != nil {
		return nil, err
	}

	// Почасовая ставка отдельных работников зависит от дневной эффективности
	for i := range profiles {
		if profiles[i].WorkerID != s.cfg.ThresholdWorkerID {
			continue
		}
		if _, ok := profiles[i].Scheme.(models.HourlyScheme); ok {
			profiles[i].Scheme = models.ThresholdScheme{
				Cutoff:       s.cfg.ThresholdCutoff,
				Below:        s.cfg.ThresholdBelow,
				AboveOrEqual: s.cfg.ThresholdAbove,
			}
		}
	}
	return profiles, nil
}

func (s *Service) saveStatus(ctx context.Context, status RunStatus) {
	data, err := json.Marshal(status)
	if err != nil {
		log.Printf("Ошибка сериализации статуса: %v", err)
		return
	}
	if err := s.redis.Set(ctx, lastStatusKey, data, 0).Err(); err != nil {
		log.Printf("Ошибка записи статуса в Redis: %v", err)
	}
}

// LastStatus статус последнего расчета из Redis
func LastStatus(ctx context.Context, redisClient *redis.Client) (*RunStatus, error) {
	data, err := redisClient.Get(ctx, lastStatusKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка чтения статуса из Redis: %w", err)
	}
	var status RunStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("ошибка разбора статуса: %w", err)
	}
	return &status, nil
}
