package payroll

import (
	"sort"
	"time"
)

// Таблица декадных бонусов: корзина прогнозных минут x ступень эффективности.
// Порядок строк и ступеней значим, поиск идет сверху вниз.
var decadeBuckets = []struct {
	lo, hi float64 // minLo <= prediction <= hi, hi=0 значит без верхней границы
	mults  [5]float64
}{
	{1440, 1920, [5]float64{0.5, 0.6, 0.75, 1, 2}},
	{1920, 2880, [5]float64{0.6, 0.7, 1, 1.25, 2.1}},
	{2880, 3840, [5]float64{0.7, 0.75, 1, 1.5, 2.25}},
	{3840, 0, [5]float64{0.75, 1, 1.5, 2, 2.5}},
}

// Нижние границы ступеней эффективности; ниже первой бонуса нет
var effTiers = [5]float64{0.25, 0.35, 0.4, 0.5, 0.6}

// DecadeBonus бонус за декаду: множитель из таблицы умноженный на
// прогнозные часы (минуты / 60). Вне таблицы бонус нулевой.
func DecadeBonus(predictedMinutes, eff float64) float64 {
	if eff < effTiers[0] {
		return 0
	}
	tier := 0
	for i := len(effTiers) - 1; i >= 0; i-- {
		if eff >= effTiers[i] {
			tier = i
			break
		}
	}
	for i, b := range decadeBuckets {
		// первая корзина включает обе границы, остальные только верхнюю
		if i == 0 {
			if predictedMinutes >= b.lo && predictedMinutes <= b.hi {
				return b.mults[tier] * predictedMinutes / 60
			}
			continue
		}
		if predictedMinutes > b.lo && (b.hi == 0 || predictedMinutes <= b.hi) {
			return b.mults[tier] * predictedMinutes / 60
		}
	}
	return 0
}

// MonthStanding месячная сводка работника для конкурса по эффективности
type MonthStanding struct {
	Month            time.Time
	WorkerID         int
	Nickname         string
	PredictedMinutes float64
	Efficiency       float64
}

// Премии месячного конкурса по местам
const monthBonusGate = 4000 // минимум прогнозных минут для участия

var monthBonusByRank = map[int]float64{1: 100, 2: 75, 3: 50, 4: 50, 5: 50}

// MonthBonuses распределяет месячные премии: участники с прогнозом
// выше порога ранжируются по эффективности, равные значения делят место
// (следующее место пропускается, как у rank()). Места с 1 по 5 премируются.
func MonthBonuses(standings []MonthStanding) map[int]float64 {
	var eligible []MonthStanding
	for _, s := range standings {
		if s.PredictedMinutes > monthBonusGate {
			eligible = append(eligible, s)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].Efficiency != eligible[j].Efficiency {
			return eligible[i].Efficiency > eligible[j].Efficiency
		}
		return eligible[i].WorkerID < eligible[j].WorkerID
	})

	out := make(map[int]float64)
	rank := 0
	for i, s := range eligible {
		if i == 0 || s.Efficiency != eligible[i-1].Efficiency {
			rank = i + 1
		}
		if bonus, ok := monthBonusByRank[rank]; ok {
			out[s.WorkerID] = bonus
		}
	}
	return out
}
