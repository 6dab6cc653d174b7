package feeds

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetSource читает диапазоны из Google Sheets через сервисный аккаунт
type SheetSource struct {
	srv           *sheets.Service
	spreadsheetID string
}

func NewSheetSource(ctx context.Context, credentialsFile, spreadsheetID string) (*SheetSource, error) {
	srv, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации Google API: %w", err)
	}
	return &SheetSource{srv: srv, spreadsheetID: spreadsheetID}, nil
}

// Read возвращает значения диапазона как строки
func (s *SheetSource) Read(rangeName string) ([][]string, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, rangeName).Do()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения таблицы: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("таблица пуста")
	}

	var rows [][]string
	for _, row := range resp.Values {
		var strRow []string
		for _, cell := range row {
			strRow = append(strRow, fmt.Sprintf("%v", cell))
		}
		rows = append(rows, strRow)
	}

	return rows, nil
}
