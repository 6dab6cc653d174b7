package payroll

import "time"

// Номинальные длины месяцев для расчета прогноза: 31/30/28,
// високосный февраль намеренно не учитывается.
func MonthLen(m time.Month) int {
	switch m {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 28
	}
}

// DecadeNum номер декады по дню месяца: 1-10 -> 1, 11-20 -> 2, 21-... -> 3
func DecadeNum(day int) int {
	switch {
	case day <= 10:
		return 1
	case day <= 20:
		return 2
	default:
		return 3
	}
}

// DecadeStart первое число декады, в которую попадает дата
func DecadeStart(date time.Time) time.Time {
	var day int
	switch DecadeNum(date.Day()) {
	case 1:
		day = 1
	case 2:
		day = 11
	default:
		day = 21
	}
	return time.Date(date.Year(), date.Month(), day, 0, 0, 0, 0, date.Location())
}

// DecadeLen длина декады в днях. Третья декада плавающая: 11/10/8
func DecadeLen(m time.Month, num int) int {
	if num != 3 {
		return 10
	}
	return MonthLen(m) - 20
}

// MonthStart первое число месяца даты
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// MonthEnd последнее календарное число месяца
func MonthEnd(month time.Time) time.Time {
	return MonthStart(month).AddDate(0, 1, -1)
}

// Days ленивый генератор дней [start; end] с шагом сутки.
// Reset возвращает итератор к началу, чтобы пройти диапазон повторно.
type Days struct {
	start, end time.Time
	cur        time.Time
}

func NewDays(start, end time.Time) *Days {
	d := &Days{start: start, end: end}
	d.Reset()
	return d
}

func (d *Days) Reset() { d.cur = d.start }

// Next возвращает следующий день диапазона; ok=false когда дни кончились
func (d *Days) Next() (time.Time, bool) {
	if d.cur.After(d.end) {
		return time.Time{}, false
	}
	day := d.cur
	d.cur = d.cur.AddDate(0, 0, 1)
	return day, true
}
