package repositories

import (
	"database/sql"
	"fmt"

	"github.com/evn/eom_salary/internal/models"
)

// SalaryRepository запись и чтение результатов расчета зарплаты.
// Итоговые таблицы перезаписываются целиком и только вместе: очистка
// и вставка обеих идут в одной транзакции, при ошибке прежнее
// содержимое обеих таблиц остается.
type SalaryRepository struct {
	db *sql.DB
}

func NewSalaryRepository(db *sql.DB) *SalaryRepository {
	return &SalaryRepository{db: db}
}

// ReplaceAll полностью перезаписывает salary_inner и salary_outer_1
// в одной транзакции
func (r *SalaryRepository) ReplaceAll(lines []models.SalaryLine, details []models.ShiftDetail) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}
	defer tx.Rollback()

	if err := replaceShiftDetails(tx, details); err != nil {
		return err
	}
	if err := replaceMonthly(tx, lines); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}
	return nil
}

func replaceMonthly(tx *sql.Tx, lines []models.SalaryLine) error {
	if _, err := tx.Exec(`TRUNCATE TABLE salary_inner RESTART IDENTITY`); err != nil {
		return fmt.Errorf("ошибка очистки salary_inner: %w", err)
	}

	const query = `
		INSERT INTO salary_inner (
			month, worker_id, worker_username, worker_nickname, worker_role, city,
			piece_pay, shift_pay, fuel_compensation, battery_charge_bonus,
			warehouse_pay, warehouse_bonus, repair_bonus, reimbursed_expenses,
			referral_bonus, penalty, advance, total_withheld, official_pay,
			decade1_bonus, decade2_bonus, decade3_bonus, month_bonus, add_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`
	for _, l := range lines {
		_, err := tx.Exec(query,
			l.Month, l.WorkerID, l.WorkerUsername, l.WorkerNickname, l.WorkerRole, l.City,
			l.PiecePay, l.ShiftPay, l.FuelCompensation, l.BatteryChargeBonus,
			l.WarehousePay, l.WarehouseBonus, l.RepairBonus, l.ReimbursedExpenses,
			l.ReferralBonus, l.Penalty, l.Advance, l.TotalWithheld, l.OfficialPay,
			l.Decade1Bonus, l.Decade2Bonus, l.Decade3Bonus, l.MonthBonus, l.AddTime)
		if err != nil {
			return fmt.Errorf("ошибка вставки в salary_inner: %w", err)
		}
	}
	return nil
}

func replaceShiftDetails(tx *sql.Tx, details []models.ShiftDetail) error {
	if _, err := tx.Exec(`TRUNCATE TABLE salary_outer_1 RESTART IDENTITY`); err != nil {
		return fmt.Errorf("ошибка очистки salary_outer_1: %w", err)
	}

	const query = `
		INSERT INTO salary_outer_1 (
			month, date, worker_id, worker_username, worker_nickname,
			start_time, finish_time, distance_km, worked_seconds, hourly_rate, add_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for _, d := range details {
		_, err := tx.Exec(query,
			d.Month, d.Date, d.WorkerID, d.WorkerUsername, d.WorkerNickname,
			d.StartTime, d.FinishTime, d.DistanceKm, d.WorkedSeconds, d.HourlyRate, d.AddTime)
		if err != nil {
			return fmt.Errorf("ошибка вставки в salary_outer_1: %w", err)
		}
	}
	return nil
}

// ListMonthly отдает все строки salary_inner для API
func (r *SalaryRepository) ListMonthly() ([]models.SalaryLine, error) {
	const query = `
		SELECT month, worker_id, worker_username, worker_nickname, worker_role, city,
			piece_pay, shift_pay, fuel_compensation, battery_charge_bonus,
			warehouse_pay, warehouse_bonus, repair_bonus, reimbursed_expenses,
			referral_bonus, penalty, advance, total_withheld, official_pay,
			decade1_bonus, decade2_bonus, decade3_bonus, month_bonus, add_time
		FROM salary_inner
		ORDER BY month, worker_id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения salary_inner: %w", err)
	}
	defer rows.Close()

	var out []models.SalaryLine
	for rows.Next() {
		var l models.SalaryLine
		err := rows.Scan(&l.Month, &l.WorkerID, &l.WorkerUsername, &l.WorkerNickname, &l.WorkerRole, &l.City,
			&l.PiecePay, &l.ShiftPay, &l.FuelCompensation, &l.BatteryChargeBonus,
			&l.WarehousePay, &l.WarehouseBonus, &l.RepairBonus, &l.ReimbursedExpenses,
			&l.ReferralBonus, &l.Penalty, &l.Advance, &l.TotalWithheld, &l.OfficialPay,
			&l.Decade1Bonus, &l.Decade2Bonus, &l.Decade3Bonus, &l.MonthBonus, &l.AddTime)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения строки salary_inner: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода salary_inner: %w", err)
	}
	return out, nil
}

// ListShiftDetails отдает детализацию по работнику (или всем, если id=0)
func (r *SalaryRepository) ListShiftDetails(workerID int) ([]models.ShiftDetail, error) {
	const query = `
		SELECT month, date, worker_id, worker_username, worker_nickname,
			start_time, finish_time, distance_km, worked_seconds, hourly_rate, add_time
		FROM salary_outer_1
		WHERE $1 = 0 OR worker_id = $1
		ORDER BY date, worker_id
	`
	rows, err := r.db.Query(query, workerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения salary_outer_1: %w", err)
	}
	defer rows.Close()

	var out []models.ShiftDetail
	for rows.Next() {
		var d models.ShiftDetail
		err := rows.Scan(&d.Month, &d.Date, &d.WorkerID, &d.WorkerUsername, &d.WorkerNickname,
			&d.StartTime, &d.FinishTime, &d.DistanceKm, &d.WorkedSeconds, &d.HourlyRate, &d.AddTime)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения строки salary_outer_1: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода salary_outer_1: %w", err)
	}
	return out, nil
}
