package models

import "time"

// RateScheme вид ставки работника. Конкретный тип определяется
// при разборе строки из таблицы ставок.
type RateScheme interface {
	Kind() string
}

// HourlyScheme почасовая ставка. Если ChangeDate не нулевая,
// с этой даты действует Changed вместо Base.
type HourlyScheme struct {
	Base       float64
	Changed    float64
	ChangeDate time.Time
}

func (HourlyScheme) Kind() string { return "hourly" }

// WeeklyScheme недельная ставка. Разбирается, но начисление по ней
// не реализовано — строки с ней дают нулевую сдельную зп.
type WeeklyScheme struct {
	Base       float64
	Changed    float64
	ChangeDate time.Time
}

func (WeeklyScheme) Kind() string { return "weekly" }

// MonthlyScheme фиксированная месячная сумма, начисляется одной строкой
// первым числом месяца
type MonthlyScheme struct {
	Amount float64
}

func (MonthlyScheme) Kind() string { return "monthly" }

// ThresholdScheme дневная ставка по эффективности: если эффективность дня
// ниже Cutoff, действует Below, иначе AboveOrEqual
type ThresholdScheme struct {
	Cutoff       float64
	Below        float64
	AboveOrEqual float64
}

func (ThresholdScheme) Kind() string { return "threshold" }

// NoScheme ни одна ставка не заполнена
type NoScheme struct{}

func (NoScheme) Kind() string { return "none" }

// RateProfile строка таблицы ставок за один месяц по одному работнику
type RateProfile struct {
	Month          time.Time // первое число месяца
	WorkerID       int
	WorkerUsername string
	WorkerNickname string
	WorkerRole     string
	City           string

	Scheme RateScheme

	NormHoursPerMonth float64
	OverNormRate      float64

	FuelNormPer100Km float64 // литры на 100 км
	FuelPricePerL    float64 // евро за литр

	WarehouseHours float64
	WarehouseBonus float64
	RepairBonus    float64
	BatteryCount   float64

	Sums [10]float64 // Сумма1..Сумма10

	Penalty float64
	Advance float64

	// Бонусная программа "приведи друга"
	ReferralPercent   float64
	InvitedWorkerID   int
	ReferralStartDate time.Time
	ReferralEndDate   time.Time

	HourlyBase float64 // базовая почасовая ставка, нужна для оплаты склада
}
