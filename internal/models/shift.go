package models

import "time"

// RawShiftRow строка графика работ как она пришла из фида (до нормализации)
type RawShiftRow struct {
	Date           string
	WorkerID       string
	WorkerUsername string
	WorkerNickname string
	StartClock     string
	FinishClock    string
	StartOdometer  string
	FinishOdometer string
}

// ShiftRecord нормализованная смена
type ShiftRecord struct {
	Month          time.Time // первое число месяца
	Date           time.Time
	WorkerID       int
	WorkerUsername string
	WorkerNickname string
	StartTime      time.Time
	FinishTime     time.Time
	DistanceKm     float64
	WorkedSeconds  int
}

// DailyShift строка из daily_shifts: фактические часы и оплачиваемые минуты за день
type DailyShift struct {
	Date     time.Time
	WorkerID int
	Nickname string
	Minutes  float64 // оплачиваемые минуты (поездки)
	Hours    float64 // фактическая длительность смен, часы
}
