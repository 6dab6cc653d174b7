package payroll

import "time"

// Efficiency отношение оплачиваемых минут к фактическим:
// минуты поездок / (часы смен * 60). При нулевых часах 0.
func Efficiency(minutes, hours float64) float64 {
	if hours == 0 {
		return 0
	}
	return minutes / hours / 60
}

// PredictMinutes экстраполирует наработанные минуты на весь период.
// observed — уже наработанные минуты, periodStart — первое число периода,
// periodLen — номинальная длина периода в днях. Если период уже прошел
// (или еще не начался), возвращаются наблюдаемые минуты как есть.
// На последнем дне периода коэффициент равен единице, деление не
// выполняется, чтобы не терять точность.
func PredictMinutes(observed float64, periodStart time.Time, periodLen int, today time.Time) float64 {
	elapsed := int(today.Sub(periodStart).Hours() / 24)
	if elapsed <= 0 || elapsed >= periodLen {
		return observed
	}
	return observed / float64(elapsed) * float64(periodLen)
}
