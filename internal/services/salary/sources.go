package salary

import (
	"context"

	"github.com/evn/eom_salary/config"
	"github.com/evn/eom_salary/internal/feeds"
)

// BuildFeeds собирает источники строк: график работ всегда идет из
// Google Sheets, ставки либо оттуда же, либо из локального xlsx.
func BuildFeeds(ctx context.Context, cfg *config.Config) (Feeds, error) {
	sheet, err := feeds.NewSheetSource(ctx, cfg.CredentialsFile, cfg.SpreadsheetID)
	if err != nil {
		return Feeds{}, err
	}

	f := Feeds{
		Shifts: func() ([][]string, error) { return sheet.Read(cfg.ShiftRange) },
		Rates:  func() ([][]string, error) { return sheet.Read(cfg.RateRange) },
	}
	if cfg.RatesXLSXPath != "" {
		f.Rates = func() ([][]string, error) {
			return feeds.ReadExcel(cfg.RatesXLSXPath, cfg.RatesXLSXSheet)
		}
	}
	return f, nil
}
