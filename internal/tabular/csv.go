package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/finfold/bankstat/internal/common"
)

// csvSheetName names the single synthetic sheet a CSV file yields.
const csvSheetName = "Sheet1"

func loadCSV(data []byte) ([]Sheet, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // statements are frequently ragged

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: decoding csv: %v", common.ErrMalformedTable, err)
	}

	sheet := Sheet{Name: csvSheetName}
	if len(records) > 0 {
		sheet.Headers = headerRow(records[0])
		sheet.Rows = make([]Row, 0, len(records)-1)
		for _, record := range records[1:] {
			sheet.Rows = append(sheet.Rows, Row(record))
		}
	}
	return []Sheet{sheet}, nil
}
