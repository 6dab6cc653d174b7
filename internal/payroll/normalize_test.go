package payroll

import (
	"testing"

	"github.com/evn/eom_salary/internal/models"
)

func rawShift() models.RawShiftRow {
	return models.RawShiftRow{
		Date:           "2025-08-05",
		WorkerID:       "7",
		WorkerUsername: "ivan",
		WorkerNickname: "Иван",
		StartClock:     "08:00:00",
		FinishClock:    "16:30:00",
		StartOdometer:  "1000",
		FinishOdometer: "1120.5",
	}
}

func TestNormalizeShift(t *testing.T) {
	rec, err := NormalizeShift(rawShift())
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if rec == nil {
		t.Fatal("смена не должна отбрасываться")
	}
	if rec.WorkedSeconds != 8*3600+30*60 {
		t.Errorf("отработано %d секунд, ожидалось %d", rec.WorkedSeconds, 8*3600+30*60)
	}
	if rec.DistanceKm != 120.5 {
		t.Errorf("пробег %v, ожидалось 120.5", rec.DistanceKm)
	}
	if rec.Month.Day() != 1 || rec.Month.Month() != 8 {
		t.Errorf("месяц %v, ожидалось первое августа", rec.Month)
	}
}

func TestNormalizeShiftBrokenClock(t *testing.T) {
	raw := rawShift()
	raw.FinishClock = "00:00:70"
	rec, err := NormalizeShift(raw)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if rec != nil {
		t.Error("строка со сломанными часами должна отбрасываться")
	}

	raw = rawShift()
	raw.StartClock = ""
	if rec, _ := NormalizeShift(raw); rec != nil {
		t.Error("строка без времени начала должна отбрасываться")
	}
}

func TestNormalizeShiftOvernight(t *testing.T) {
	raw := rawShift()
	raw.StartClock = "22:00:00"
	raw.FinishClock = "06:00:00"

	rec, err := NormalizeShift(raw)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	// Окончание раньше начала значит смена через полночь
	if rec.WorkedSeconds != 8*3600 {
		t.Errorf("отработано %d секунд, ожидалось %d", rec.WorkedSeconds, 8*3600)
	}
	if rec.FinishTime.Day() != 6 {
		t.Errorf("окончание %v, ожидалось 6 августа", rec.FinishTime)
	}
}

func TestNormalizeShiftNegativeDistance(t *testing.T) {
	raw := rawShift()
	raw.StartOdometer = "500"
	raw.FinishOdometer = "400"

	rec, err := NormalizeShift(raw)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if rec.DistanceKm != 0 {
		t.Errorf("пробег %v при сбросе одометра, ожидалось 0", rec.DistanceKm)
	}
}

func TestNormalizeShiftBadDate(t *testing.T) {
	raw := rawShift()
	raw.Date = "вчера"
	if _, err := NormalizeShift(raw); err == nil {
		t.Error("ожидалась ошибка на неразборную дату")
	}
}
