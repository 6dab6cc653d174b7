package feeds

import (
	"fmt"
	"log"
	"time"

	"github.com/evn/eom_salary/internal/models"
)

// Имена столбцов таблицы ставок
const (
	colMonth          = "Месяц"
	colWorkerID       = "Worker id"
	colUsername       = "Worker username"
	colNickname       = "Worker nickname"
	colRole           = "Worker role"
	colCity           = "city"
	colHourRate       = "Ставка за час"
	colHourRateNew    = "Ставка измененная за час"
	colHourRateDate   = "Дата нового условия ставки (час)"
	colWeekRate       = "Ставка за неделю"
	colWeekRateNew    = "Ставка измененная за неделю"
	colWeekRateDate   = "Дата нового условия ставки (нед)"
	colMonthRate      = "Ставка за месяц"
	colNormHours      = "Норма рабочих часов за месяц"
	colOverNormRate   = "Ставка свыше нормы"
	colFuelNorm       = "Норма расхода топлива на 100 км, литры"
	colFuelPrice      = "Цена топлива за 1 литр, евро"
	colWarehouseHours = "Количество часов работы на складе"
	colWarehouseBonus = "Бонус за работу на складе"
	colRepairBonus    = "Бонус за ремонт"
	colBatteryCount   = "Общее количество заряженных батарей"
	colPenalty        = "Штраф"
	colAdvance        = "Аванс"
	colRefPercent     = "Процент от зарплаты, % (бонусная программа)"
	colRefWorkerID    = "id invited worker nickname (бонусная программа)"
	colRefStart       = "Нач. дата расчета бонуса нового сотрудника"
	colRefEnd         = "Оконч. дата расчета бонуса нового сотрудника"
)

// ParseRateRows разбирает выгрузку таблицы ставок: первая строка
// заголовки, дальше по строке на работника за месяц. Строки без месяца
// пропускаются.
func ParseRateRows(rows [][]string) ([]models.RateProfile, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("таблица ставок должна содержать заголовок и хотя бы одну строку")
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[h] = i
	}
	for _, required := range []string{colMonth, colWorkerID, colHourRate} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("в таблице ставок нет столбца %q", required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var profiles []models.RateProfile
	for n, row := range rows[1:] {
		month := coerceDate(cell(row, colMonth))
		if month.IsZero() {
			continue
		}
		month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

		workerID := coerceInt(cell(row, colWorkerID))
		if workerID == 0 {
			log.Printf("строка %d таблицы ставок без id работника, пропускаю", n+2)
			continue
		}

		p := models.RateProfile{
			Month:          month,
			WorkerID:       workerID,
			WorkerUsername: cell(row, colUsername),
			WorkerNickname: cell(row, colNickname),
			WorkerRole:     cell(row, colRole),
			City:           cell(row, colCity),

			NormHoursPerMonth: coerceFloat(cell(row, colNormHours)),
			OverNormRate:      coerceFloat(cell(row, colOverNormRate)),
			FuelNormPer100Km:  coerceFloat(cell(row, colFuelNorm)),
			FuelPricePerL:     coerceFloat(cell(row, colFuelPrice)),
			WarehouseHours:    coerceFloat(cell(row, colWarehouseHours)),
			WarehouseBonus:    coerceFloat(cell(row, colWarehouseBonus)),
			RepairBonus:       coerceFloat(cell(row, colRepairBonus)),
			BatteryCount:      coerceFloat(cell(row, colBatteryCount)),

			Penalty: coerceFloat(cell(row, colPenalty)),
			Advance: coerceFloat(cell(row, colAdvance)),

			ReferralPercent:   coerceFloat(cell(row, colRefPercent)),
			InvitedWorkerID:   coerceInt(cell(row, colRefWorkerID)),
			ReferralStartDate: coerceDate(cell(row, colRefStart)),
			ReferralEndDate:   coerceDate(cell(row, colRefEnd)),

			HourlyBase: coerceFloat(cell(row, colHourRate)),
		}

		for i := 0; i < 10; i++ {
			p.Sums[i] = coerceFloat(cell(row, fmt.Sprintf("Сумма%d", i+1)))
		}

		p.Scheme = resolveScheme(row, cell)
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// resolveScheme определяет вид ставки: первая ненулевая из
// час -> неделя -> месяц
func resolveScheme(row []string, cell func([]string, string) string) models.RateScheme {
	if rate := coerceFloat(cell(row, colHourRate)); rate != 0 {
		return models.HourlyScheme{
			Base:       rate,
			Changed:    coerceFloat(cell(row, colHourRateNew)),
			ChangeDate: coerceDate(cell(row, colHourRateDate)),
		}
	}
	if rate := coerceFloat(cell(row, colWeekRate)); rate != 0 {
		return models.WeeklyScheme{
			Base:       rate,
			Changed:    coerceFloat(cell(row, colWeekRateNew)),
			ChangeDate: coerceDate(cell(row, colWeekRateDate)),
		}
	}
	if rate := coerceFloat(cell(row, colMonthRate)); rate != 0 {
		return models.MonthlyScheme{Amount: rate}
	}
	return models.NoScheme{}
}
