package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the game-log sheet name in the league workbook.
const defaultSheet = "gamelog"

// workbookRows extracts the raw cell grid of the game-log sheet from an
// .xlsx/.xlsm workbook. Sheet lookup is case-insensitive.
func workbookRows(raw []byte, sheet string) ([][]string, error) {
	if sheet == "" {
		sheet = defaultSheet
	}
	wb, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	name := ""
	for _, s := range wb.GetSheetList() {
		if strings.EqualFold(s, sheet) {
			name = s
			break
		}
	}
	if name == "" {
		return nil, fmt.Errorf("workbook has no sheet %q (sheets: %s)",
			sheet, strings.Join(wb.GetSheetList(), ", "))
	}

	rows, err := wb.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return rows, nil
}
