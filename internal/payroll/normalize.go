package payroll

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/evn/eom_salary/internal/models"
)

// Сломанный таймер в графике пишет это значение вместо времени
const brokenClock = "00:00:70"

// NormalizeShift превращает сырую строку графика в смену.
// Строки со сломанными или пустыми часами отбрасываются (nil, nil).
func NormalizeShift(raw models.RawShiftRow) (*models.ShiftRecord, error) {
	start := strings.TrimSpace(raw.StartClock)
	finish := strings.TrimSpace(raw.FinishClock)
	if start == "" || finish == "" || start == brokenClock || finish == brokenClock {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(raw.Date))
	if err != nil {
		return nil, fmt.Errorf("неверная дата смены %q: %w", raw.Date, err)
	}

	workerID, err := strconv.Atoi(strings.TrimSpace(raw.WorkerID))
	if err != nil {
		return nil, fmt.Errorf("неверный id работника %q: %w", raw.WorkerID, err)
	}

	startTime, err := clockOn(date, start)
	if err != nil {
		return nil, fmt.Errorf("неверное время начала %q: %w", start, err)
	}
	finishTime, err := clockOn(date, finish)
	if err != nil {
		return nil, fmt.Errorf("неверное время окончания %q: %w", finish, err)
	}
	// Смена через полночь: окончание меньше начала значит следующий день
	if finish < start {
		finishTime = finishTime.AddDate(0, 0, 1)
	}

	startOdo := parseOdometer(raw.StartOdometer)
	finishOdo := parseOdometer(raw.FinishOdometer)
	distance := finishOdo - startOdo
	if distance < 0 {
		distance = 0
	}

	return &models.ShiftRecord{
		Month:          MonthStart(date),
		Date:           date,
		WorkerID:       workerID,
		WorkerUsername: strings.TrimSpace(raw.WorkerUsername),
		WorkerNickname: strings.TrimSpace(raw.WorkerNickname),
		StartTime:      startTime,
		FinishTime:     finishTime,
		DistanceKm:     distance,
		WorkedSeconds:  int(finishTime.Sub(startTime).Seconds()),
	}, nil
}

func clockOn(date time.Time, clock string) (time.Time, error) {
	layout := "15:04:05"
	if strings.Count(clock, ":") == 1 {
		layout = "15:04"
	}
	t, err := time.Parse(layout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, date.Location()), nil
}

func parseOdometer(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
