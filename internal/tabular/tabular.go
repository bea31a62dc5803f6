// Package tabular decodes raw statement exports into ordered sheets of rows.
// It understands the container formats only; deciding what the columns mean
// is left to the classification layer.
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/finfold/bankstat/internal/common"
)

// FileType identifies the declared format of a statement export.
type FileType string

// Supported statement formats. TypePDF is recognized but not decodable.
const (
	TypeCSV  FileType = "csv"
	TypeXLSX FileType = "xlsx"
	TypeXLS  FileType = "xls"
	TypePDF  FileType = "pdf"
)

// Sheet is one logical table: the first row of the source becomes Headers,
// every following row a data Row. Sheets keep the order of the source file.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}

// Row holds raw cell values positionally aligned with the sheet headers.
// Rows may be ragged; use Cell for bounds-safe access.
type Row []string

// Cell returns the raw value of column i, or "" when the row is short.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// DetectFileType maps a filename extension to its FileType.
func DetectFileType(filename string) (FileType, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "csv":
		return TypeCSV, nil
	case "xlsx":
		return TypeXLSX, nil
	case "xls":
		return TypeXLS, nil
	case "pdf":
		return TypePDF, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedExtension, ext)
	}
}

// Load decodes data according to the declared file type. PDF input is
// recognized but always rejected; scanned statements need conversion first.
func Load(data []byte, fileType FileType) ([]Sheet, error) {
	switch fileType {
	case TypeCSV:
		return loadCSV(data)
	case TypeXLSX:
		return loadXLSX(data)
	case TypeXLS:
		return loadXLS(data)
	case TypePDF:
		return nil, fmt.Errorf("%w: convert the statement to csv or xlsx first", common.ErrPDFNotSupported)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedExtension, string(fileType))
	}
}

func headerRow(cells []string) []string {
	headers := make([]string, len(cells))
	for i, c := range cells {
		headers[i] = strings.TrimSpace(c)
	}
	return headers
}
