package tabular

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/finfold/bankstat/internal/common"
)

func loadXLSX(data []byte) ([]Sheet, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: opening xlsx workbook: %v", common.ErrMalformedTable, err)
	}
	defer func() { _ = workbook.Close() }()

	names := workbook.GetSheetList()
	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		rows, err := workbook.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("%w: reading sheet %q: %v", common.ErrMalformedTable, name, err)
		}

		sheet := Sheet{Name: name}
		if len(rows) > 0 {
			sheet.Headers = headerRow(rows[0])
			sheet.Rows = make([]Row, 0, len(rows)-1)
			for _, record := range rows[1:] {
				sheet.Rows = append(sheet.Rows, Row(record))
			}
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}
