package payroll

import (
	"testing"
	"time"
)

func TestMonthLen(t *testing.T) {
	cases := []struct {
		month time.Month
		want  int
	}{
		{time.January, 31},
		{time.February, 28},
		{time.April, 30},
		{time.August, 31},
		{time.December, 31},
	}
	for _, c := range cases {
		if got := MonthLen(c.month); got != c.want {
			t.Errorf("MonthLen(%v) = %d, ожидалось %d", c.month, got, c.want)
		}
	}
}

func TestDecadeNum(t *testing.T) {
	cases := []struct {
		day, want int
	}{
		{1, 1}, {10, 1}, {11, 2}, {20, 2}, {21, 3}, {31, 3},
	}
	for _, c := range cases {
		if got := DecadeNum(c.day); got != c.want {
			t.Errorf("DecadeNum(%d) = %d, ожидалось %d", c.day, got, c.want)
		}
	}
}

func TestDecadeLen(t *testing.T) {
	if got := DecadeLen(time.August, 1); got != 10 {
		t.Errorf("первая декада = %d дней, ожидалось 10", got)
	}
	if got := DecadeLen(time.August, 3); got != 11 {
		t.Errorf("третья декада августа = %d дней, ожидалось 11", got)
	}
	if got := DecadeLen(time.September, 3); got != 10 {
		t.Errorf("третья декада сентября = %d дней, ожидалось 10", got)
	}
	if got := DecadeLen(time.February, 3); got != 8 {
		t.Errorf("третья декада февраля = %d дней, ожидалось 8", got)
	}
}

func TestDecadeStart(t *testing.T) {
	date := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)
	want := time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC)
	if got := DecadeStart(date); !got.Equal(want) {
		t.Errorf("DecadeStart(%v) = %v, ожидалось %v", date, got, want)
	}
}

func TestDaysIteratorCoversWholeMonth(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	days := NewDays(start, MonthEnd(start))

	count := 0
	var last time.Time
	for {
		day, ok := days.Next()
		if !ok {
			break
		}
		count++
		last = day
	}
	if count != 31 {
		t.Errorf("итератор вернул %d дней, ожидалось 31", count)
	}
	if last.Day() != 31 {
		t.Errorf("последний день %v, ожидалось 31 августа", last)
	}

	// После Reset диапазон проходится заново
	days.Reset()
	if first, ok := days.Next(); !ok || !first.Equal(start) {
		t.Errorf("после Reset первый день %v, ожидалось %v", first, start)
	}
}
