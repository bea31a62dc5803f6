package tabular

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"

	"github.com/finfold/bankstat/internal/common"
)

func loadXLS(data []byte) ([]Sheet, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: opening xls workbook: %v", common.ErrMalformedTable, err)
	}

	sheets := make([]Sheet, 0, workbook.NumSheets())
	for i := 0; i < workbook.NumSheets(); i++ {
		worksheet := workbook.GetSheet(i)
		if worksheet == nil {
			continue
		}

		sheet := Sheet{Name: worksheet.Name}
		for ri := 0; ri <= int(worksheet.MaxRow); ri++ {
			row := worksheet.Row(ri)
			if row == nil || row.LastCol() == 0 {
				continue
			}
			record := make([]string, 0, row.LastCol())
			for ci := 0; ci < row.LastCol(); ci++ {
				record = append(record, row.Col(ci))
			}
			// The first populated row carries the headers.
			if sheet.Headers == nil {
				sheet.Headers = headerRow(record)
				continue
			}
			sheet.Rows = append(sheet.Rows, Row(record))
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}
