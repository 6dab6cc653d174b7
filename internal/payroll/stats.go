package payroll

import (
	"time"

	"github.com/evn/eom_salary/internal/models"
)

// MonthWorker ключ агрегации месяц+работник
type MonthWorker struct {
	Month    time.Time
	WorkerID int
}

type periodAgg struct {
	minutes float64 // оплачиваемые минуты
	hours   float64 // фактические часы смен
}

// DecadeBonuses считает бонусы за три декады каждого месяца по каждому
// работнику: наработка декады прогнозируется на ее полную длину, по
// прогнозу и эффективности берется множитель из таблицы.
func DecadeBonuses(rows []models.DailyShift, today time.Time) map[MonthWorker][3]float64 {
	type decadeKey struct {
		start    time.Time
		workerID int
	}
	agg := make(map[decadeKey]periodAgg)
	for _, r := range rows {
		k := decadeKey{start: DecadeStart(r.Date), workerID: r.WorkerID}
		a := agg[k]
		a.minutes += r.Minutes
		a.hours += r.Hours
		agg[k] = a
	}

	out := make(map[MonthWorker][3]float64)
	for k, a := range agg {
		num := DecadeNum(k.start.Day())
		observed := a.hours * 60
		predicted := PredictMinutes(observed, k.start, DecadeLen(k.start.Month(), num), today)
		eff := Efficiency(a.minutes, a.hours)

		mw := MonthWorker{Month: MonthStart(k.start), WorkerID: k.workerID}
		bonuses := out[mw]
		bonuses[num-1] = DecadeBonus(predicted, eff)
		out[mw] = bonuses
	}
	return out
}

// MonthStandings месячные сводки для конкурса, сгруппированные по месяцу
func MonthStandings(rows []models.DailyShift, today time.Time) map[time.Time][]MonthStanding {
	type monthKey struct {
		month    time.Time
		workerID int
	}
	agg := make(map[monthKey]periodAgg)
	nick := make(map[monthKey]string)
	for _, r := range rows {
		k := monthKey{month: MonthStart(r.Date), workerID: r.WorkerID}
		a := agg[k]
		a.minutes += r.Minutes
		a.hours += r.Hours
		agg[k] = a
		nick[k] = r.Nickname
	}

	out := make(map[time.Time][]MonthStanding)
	for k, a := range agg {
		observed := a.hours * 60
		out[k.month] = append(out[k.month], MonthStanding{
			Month:            k.month,
			WorkerID:         k.workerID,
			Nickname:         nick[k],
			PredictedMinutes: PredictMinutes(observed, k.month, MonthLen(k.month.Month()), today),
			Efficiency:       Efficiency(a.minutes, a.hours),
		})
	}
	return out
}

// DailyEfficiencies дневная эффективность работника, ключ YYYY-MM-DD.
// Нужна для ставок по порогу эффективности.
func DailyEfficiencies(rows []models.DailyShift, workerID int) map[string]float64 {
	agg := make(map[string]periodAgg)
	for _, r := range rows {
		if r.WorkerID != workerID {
			continue
		}
		k := r.Date.Format("2006-01-02")
		a := agg[k]
		a.minutes += r.Minutes
		a.hours += r.Hours
		agg[k] = a
	}
	out := make(map[string]float64, len(agg))
	for k, a := range agg {
		out[k] = Efficiency(a.minutes, a.hours)
	}
	return out
}
