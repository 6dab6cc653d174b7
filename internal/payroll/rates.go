package payroll

import (
	"time"

	"github.com/evn/eom_salary/internal/models"
)

// DayRate ставка, действующая в конкретный день
type DayRate struct {
	Date time.Time
	Rate float64
}

// RateTimeline посуточная раскладка почасовой ставки работника за месяц.
// Дни генерируются лениво, итератор можно перезапустить через Reset.
type RateTimeline struct {
	days    *Days
	scheme  models.HourlyScheme
	dailyFn func(date time.Time) float64
}

// HourlyTimeline строит раскладку для почасовой ставки: до даты изменения
// действует базовая ставка, с даты изменения (включительно) измененная.
func HourlyTimeline(month time.Time, s models.HourlyScheme) *RateTimeline {
	start := MonthStart(month)
	return &RateTimeline{
		days:   NewDays(start, MonthEnd(start)),
		scheme: s,
	}
}

// ThresholdTimeline строит раскладку для ставки по порогу эффективности:
// ставку каждого дня дает dailyFn (обычно замыкание над дневной статистикой).
func ThresholdTimeline(month time.Time, dailyFn func(date time.Time) float64) *RateTimeline {
	start := MonthStart(month)
	return &RateTimeline{
		days:    NewDays(start, MonthEnd(start)),
		dailyFn: dailyFn,
	}
}

func (t *RateTimeline) Reset() { t.days.Reset() }

// Next следующий день месяца со ставкой; ok=false в конце месяца
func (t *RateTimeline) Next() (DayRate, bool) {
	day, ok := t.days.Next()
	if !ok {
		return DayRate{}, false
	}
	if t.dailyFn != nil {
		return DayRate{Date: day, Rate: t.dailyFn(day)}, true
	}
	rate := t.scheme.Base
	if !t.scheme.ChangeDate.IsZero() && !day.Before(t.scheme.ChangeDate) {
		rate = t.scheme.Changed
	}
	return DayRate{Date: day, Rate: rate}, true
}

// RateFor ставка на конкретную дату
func (t *RateTimeline) RateFor(date time.Time) float64 {
	t.Reset()
	for {
		dr, ok := t.Next()
		if !ok {
			return 0
		}
		if dr.Date.Equal(date) {
			return dr.Rate
		}
	}
}

// ThresholdDailyRate дневная ставка по порогу: эффективность дня ниже
// Cutoff дает пониженную ставку
func ThresholdDailyRate(s models.ThresholdScheme, eff float64) float64 {
	if eff < s.Cutoff {
		return s.Below
	}
	return s.AboveOrEqual
}
