package excel

import (
	"path/filepath"
	"strings"
)

// Format is the workbook encoding of a scores source
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// FormatFromPath picks csv for ".csv" names and xlsx for everything else
func FormatFromPath(path string) Format {
	// strip any query string from URLs
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return FormatCSV
	}
	return FormatXLSX
}
