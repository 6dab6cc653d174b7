package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/evn/eom_salary/internal/models"
)

const batteryChargeRate = 0.2 // евро за заряженную батарею

// WorkerMonthInput все данные для расчета одного работника за один месяц
type WorkerMonthInput struct {
	Profile models.RateProfile
	Shifts  []models.ShiftRecord

	// Дневная эффективность (ключ YYYY-MM-DD), нужна только для ставки по порогу
	DailyEfficiency map[string]float64

	DecadeBonuses [3]float64
	MonthBonus    float64
	AddTime       time.Time
}

// ComputeWorkerMonth считает итоговую строку зарплаты и посменную
// детализацию. Функция чистая: все обращения к внешним источникам
// должны быть сделаны до вызова.
func ComputeWorkerMonth(in WorkerMonthInput) (models.SalaryLine, []models.ShiftDetail) {
	p := in.Profile

	timeline := timelineFor(p, in.DailyEfficiency)

	var piecePay, shiftPay, totalDistance float64
	var details []models.ShiftDetail

	for _, s := range in.Shifts {
		rate := 0.0
		if timeline != nil {
			rate = timeline.RateFor(s.Date)
		}
		piecePay += rate * float64(s.WorkedSeconds) / 3600
		totalDistance += s.DistanceKm
		details = append(details, models.ShiftDetail{
			Month:          p.Month,
			Date:           s.Date,
			WorkerID:       s.WorkerID,
			WorkerUsername: s.WorkerUsername,
			WorkerNickname: s.WorkerNickname,
			StartTime:      s.StartTime,
			FinishTime:     s.FinishTime,
			DistanceKm:     s.DistanceKm,
			WorkedSeconds:  s.WorkedSeconds,
			HourlyRate:     rate,
			AddTime:        in.AddTime,
		})
	}

	// Месячная ставка начисляется одной строкой первым числом месяца
	if m, ok := p.Scheme.(models.MonthlyScheme); ok {
		shiftPay = m.Amount
		details = append(details, models.ShiftDetail{
			Month:          p.Month,
			Date:           p.Month,
			WorkerID:       p.WorkerID,
			WorkerUsername: p.WorkerUsername,
			WorkerNickname: p.WorkerNickname,
			StartTime:      p.Month,
			FinishTime:     p.Month,
			AddTime:        in.AddTime,
		})
	}

	line := models.SalaryLine{
		Month:          p.Month,
		WorkerID:       p.WorkerID,
		WorkerUsername: p.WorkerUsername,
		WorkerNickname: p.WorkerNickname,
		WorkerRole:     p.WorkerRole,
		City:           p.City,

		PiecePay:           round2(piecePay),
		ShiftPay:           round2(shiftPay),
		FuelCompensation:   round2(p.FuelNormPer100Km * totalDistance * p.FuelPricePerL / 100),
		BatteryChargeBonus: round2(p.BatteryCount * batteryChargeRate),
		WarehousePay:       round2(p.WarehouseHours * p.HourlyBase),
		WarehouseBonus:     round2(p.WarehouseBonus),
		RepairBonus:        round2(p.RepairBonus),
		ReimbursedExpenses: round2(p.Sums[0] + p.Sums[1] + p.Sums[2]),
		OfficialPay:        round2(p.Sums[3] + p.Sums[4] + p.Sums[5] + p.Sums[6]),
		TotalWithheld:      round2(p.Sums[7] + p.Sums[8] + p.Sums[9]),
		ReferralBonus:      round2(referralBonus(p)),
		Penalty:            round2(p.Penalty),
		Advance:            round2(p.Advance),

		Decade1Bonus: round2(in.DecadeBonuses[0]),
		Decade2Bonus: round2(in.DecadeBonuses[1]),
		Decade3Bonus: round2(in.DecadeBonuses[2]),
		MonthBonus:   round2(in.MonthBonus),

		AddTime: in.AddTime,
	}
	return line, details
}

func timelineFor(p models.RateProfile, dailyEff map[string]float64) *RateTimeline {
	switch s := p.Scheme.(type) {
	case models.HourlyScheme:
		return HourlyTimeline(p.Month, s)
	case models.ThresholdScheme:
		return ThresholdTimeline(p.Month, func(date time.Time) float64 {
			eff := dailyEff[date.Format("2006-01-02")]
			return ThresholdDailyRate(s, eff)
		})
	default:
		// недельная ставка не начисляется, месячная идет отдельной строкой
		return nil
	}
}

// Бонус приведи друга: по 5 евро за день периода, умноженные на процент
func referralBonus(p models.RateProfile) float64 {
	if p.ReferralStartDate.IsZero() || p.ReferralEndDate.IsZero() {
		return 0
	}
	days := p.ReferralEndDate.Sub(p.ReferralStartDate).Hours() / 24
	return days * 5 * p.ReferralPercent / 100
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
