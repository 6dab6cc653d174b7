package feeds

import (
	"testing"
	"time"

	"github.com/evn/eom_salary/internal/models"
)

var rateHeaders = []string{
	"Месяц", "Worker id", "Worker username", "Worker nickname", "Worker role", "city",
	"Ставка за час", "Ставка измененная за час", "Дата нового условия ставки (час)",
	"Ставка за неделю", "Ставка измененная за неделю", "Дата нового условия ставки (нед)",
	"Ставка за месяц",
	"Норма расхода топлива на 100 км, литры", "Цена топлива за 1 литр, евро",
	"Общее количество заряженных батарей",
	"Сумма1", "Сумма2", "Сумма3", "Сумма4", "Сумма5",
	"Штраф", "Аванс",
	"Процент от зарплаты, % (бонусная программа)",
	"Нач. дата расчета бонуса нового сотрудника",
	"Оконч. дата расчета бонуса нового сотрудника",
}

func rateRow(values map[string]string) []string {
	row := make([]string, len(rateHeaders))
	for i, h := range rateHeaders {
		row[i] = values[h]
	}
	return row
}

func TestParseRateRowsHourly(t *testing.T) {
	rows := [][]string{
		rateHeaders,
		rateRow(map[string]string{
			"Месяц":                    "2025-08-01",
			"Worker id":                "7",
			"Worker username":          "ivan",
			"Worker nickname":          "Иван",
			"city":                     "Volos",
			"Ставка за час":            "4",
			"Ставка измененная за час": "5",
			"Дата нового условия ставки (час)": "2025-08-15",
			"Норма расхода топлива на 100 км, литры": "6",
			"Цена топлива за 1 литр, евро":           "1,5",
			"Общее количество заряженных батарей":    "-",
			"Сумма1": "10",
			"Сумма4": "25",
			"Штраф":  "30",
		}),
	}

	profiles, err := ParseRateRows(rows)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("строк %d, ожидалась 1", len(profiles))
	}

	p := profiles[0]
	if p.WorkerID != 7 || p.City != "Volos" {
		t.Errorf("работник %d город %q, ожидалось 7 Volos", p.WorkerID, p.City)
	}
	s, ok := p.Scheme.(models.HourlyScheme)
	if !ok {
		t.Fatalf("вид ставки %T, ожидалась почасовая", p.Scheme)
	}
	if s.Base != 4 || s.Changed != 5 {
		t.Errorf("ставки %v/%v, ожидалось 4/5", s.Base, s.Changed)
	}
	if !s.ChangeDate.Equal(time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("дата изменения %v, ожидалось 15 августа", s.ChangeDate)
	}
	// Запятая в дробной части и прочерк вместо нуля
	if p.FuelPricePerL != 1.5 {
		t.Errorf("цена топлива %v, ожидалось 1.5", p.FuelPricePerL)
	}
	if p.BatteryCount != 0 {
		t.Errorf("батареи %v при прочерке, ожидалось 0", p.BatteryCount)
	}
	if p.Sums[0] != 10 || p.Sums[3] != 25 {
		t.Errorf("суммы %v и %v, ожидалось 10 и 25", p.Sums[0], p.Sums[3])
	}
}

func TestParseRateRowsSchemePrecedence(t *testing.T) {
	rows := [][]string{
		rateHeaders,
		// Час заполнен: он и побеждает
		rateRow(map[string]string{
			"Месяц": "2025-08-01", "Worker id": "1",
			"Ставка за час": "4", "Ставка за неделю": "200", "Ставка за месяц": "900",
		}),
		// Только неделя
		rateRow(map[string]string{
			"Месяц": "2025-08-01", "Worker id": "2",
			"Ставка за неделю": "200", "Ставка за месяц": "900",
		}),
		// Только месяц
		rateRow(map[string]string{
			"Месяц": "2025-08-01", "Worker id": "3",
			"Ставка за месяц": "900",
		}),
		// Ничего не заполнено
		rateRow(map[string]string{
			"Месяц": "2025-08-01", "Worker id": "4",
		}),
	}

	profiles, err := ParseRateRows(rows)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	wantKinds := []string{"hourly", "weekly", "monthly", "none"}
	for i, want := range wantKinds {
		if got := profiles[i].Scheme.Kind(); got != want {
			t.Errorf("работник %d: вид ставки %q, ожидалось %q", profiles[i].WorkerID, got, want)
		}
	}
}

func TestParseRateRowsSkipsEmptyMonth(t *testing.T) {
	rows := [][]string{
		rateHeaders,
		rateRow(map[string]string{"Worker id": "7", "Ставка за час": "4"}),
		rateRow(map[string]string{"Месяц": "2025-08-01", "Worker id": "8", "Ставка за час": "4"}),
	}

	profiles, err := ParseRateRows(rows)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(profiles) != 1 || profiles[0].WorkerID != 8 {
		t.Errorf("ожидалась одна строка работника 8, получено %d", len(profiles))
	}
}

func TestParseRateRowsEpochDateIsZero(t *testing.T) {
	rows := [][]string{
		rateHeaders,
		rateRow(map[string]string{
			"Месяц": "2025-08-01", "Worker id": "7", "Ставка за час": "4",
			"Дата нового условия ставки (час)": "1970-01-01",
		}),
	}

	profiles, err := ParseRateRows(rows)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	s := profiles[0].Scheme.(models.HourlyScheme)
	if !s.ChangeDate.IsZero() {
		t.Errorf("дата изменения %v, мусорная 1970-01-01 должна давать нулевую", s.ChangeDate)
	}
}

func TestParseRateRowsMissingColumn(t *testing.T) {
	rows := [][]string{
		{"Месяц", "Worker username"},
		{"2025-08-01", "ivan"},
	}
	if _, err := ParseRateRows(rows); err == nil {
		t.Error("ожидалась ошибка на отсутствующий столбец Worker id")
	}
}
