package feeds

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadExcel читает лист xlsx-файла как строки. Если лист не найден,
// берется первый лист книги.
func ReadExcel(path, sheetName string) ([][]string, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть Excel файл %s: %w", path, err)
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(sheetName)
	if err != nil {
		sheets := xlsx.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("пустой Excel файл %s", path)
		}
		rows, err = xlsx.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения листа: %w", err)
		}
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("лист пуст")
	}
	return rows, nil
}
