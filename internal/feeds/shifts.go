package feeds

import (
	"fmt"

	"github.com/evn/eom_salary/internal/models"
)

// Имена столбцов графика работ
const (
	colShiftDate   = "Date"
	colShiftWorker = "Worker id"
	colShiftUser   = "Worker username"
	colShiftNick   = "Worker nickname"
	colShiftStart  = "Actual start time"
	colShiftFinish = "Actual finish time"
	colStartOdo    = "Start odometer kilometers"
	colFinishOdo   = "Finish odometer kilometers"
)

// ParseShiftRows разбирает выгрузку графика работ в сырые строки.
// Фильтрация сломанных часов и нормализация происходят дальше.
func ParseShiftRows(rows [][]string) ([]models.RawShiftRow, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("график работ должен содержать заголовок и хотя бы одну строку")
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[h] = i
	}
	for _, required := range []string{colShiftDate, colShiftWorker, colShiftStart, colShiftFinish} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("в графике работ нет столбца %q", required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []models.RawShiftRow
	for _, row := range rows[1:] {
		if cell(row, colShiftDate) == "" {
			continue
		}
		out = append(out, models.RawShiftRow{
			Date:           cell(row, colShiftDate),
			WorkerID:       cell(row, colShiftWorker),
			WorkerUsername: cell(row, colShiftUser),
			WorkerNickname: cell(row, colShiftNick),
			StartClock:     cell(row, colShiftStart),
			FinishClock:    cell(row, colShiftFinish),
			StartOdometer:  cell(row, colStartOdo),
			FinishOdometer: cell(row, colFinishOdo),
		})
	}
	return out, nil
}
