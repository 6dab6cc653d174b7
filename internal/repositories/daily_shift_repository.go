package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/evn/eom_salary/internal/models"
)

// DailyShiftRepository чтение дневной статистики смен из daily_shifts
type DailyShiftRepository struct {
	db *sql.DB
}

func NewDailyShiftRepository(db *sql.DB) *DailyShiftRepository {
	return &DailyShiftRepository{db: db}
}

// FetchSince возвращает дневные строки начиная с указанной даты.
// Минуты и часы агрегируются по дню работника.
func (r *DailyShiftRepository) FetchSince(since time.Time) ([]models.DailyShift, error) {
	const query = `
		SELECT
			ds."Date"::date,
			ds."Worker id"::int,
			ds."Nickname",
			COALESCE(SUM(ds."Minutes"), 0),
			COALESCE(SUM(ds."Actual duration (hours)"), 0)
		FROM public.daily_shifts ds
		WHERE ds."Date" >= $1
		GROUP BY ds."Date", ds."Worker id", ds."Nickname"
	`

	rows, err := r.db.Query(query, since)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения daily_shifts: %w", err)
	}
	defer rows.Close()

	var out []models.DailyShift
	for rows.Next() {
		var d models.DailyShift
		if err := rows.Scan(&d.Date, &d.WorkerID, &d.Nickname, &d.Minutes, &d.Hours); err != nil {
			return nil, fmt.Errorf("ошибка чтения строки daily_shifts: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода daily_shifts: %w", err)
	}
	return out, nil
}
