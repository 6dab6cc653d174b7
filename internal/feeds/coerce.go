package feeds

import (
	"strconv"
	"strings"
	"time"
)

// В фиде пустые ячейки и прочерки означают ноль, дробная часть
// бывает и через запятую
func coerceFloat(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func coerceInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	// целое может прийти как "35.0"
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

var dateLayouts = []string{"2006-01-02", "02.01.2006", "2006-01-02 15:04:05"}

// coerceDate разбирает дату фида. Пустая строка и 1970-01-01
// (мусор от баг-значений в исходной таблице) дают нулевую дату.
func coerceDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() == 1970 && t.Month() == time.January && t.Day() == 1 {
				return time.Time{}
			}
			return t
		}
	}
	return time.Time{}
}
