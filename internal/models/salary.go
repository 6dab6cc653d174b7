package models

import "time"

// SalaryLine итоговая строка расчета по работнику за месяц (salary_inner)
type SalaryLine struct {
	Month          time.Time
	WorkerID       int
	WorkerUsername string
	WorkerNickname string
	WorkerRole     string
	City           string

	PiecePay           float64 // сдельная зп
	ShiftPay           float64 // посменная зп (месячная ставка)
	FuelCompensation   float64
	BatteryChargeBonus float64
	WarehousePay       float64
	WarehouseBonus     float64
	RepairBonus        float64
	ReimbursedExpenses float64
	ReferralBonus      float64
	Penalty            float64
	Advance            float64
	TotalWithheld      float64
	OfficialPay        float64

	Decade1Bonus float64
	Decade2Bonus float64
	Decade3Bonus float64
	MonthBonus   float64

	AddTime time.Time
}

// ShiftDetail строка посменной детализации (salary_outer_1)
type ShiftDetail struct {
	Month          time.Time
	Date           time.Time
	WorkerID       int
	WorkerUsername string
	WorkerNickname string
	StartTime      time.Time
	FinishTime     time.Time
	DistanceKm     float64
	WorkedSeconds  int
	HourlyRate     float64
	AddTime        time.Time
}
