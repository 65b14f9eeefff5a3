package excel

import (
	"io"

	"heroscores/domain/scores"
	"heroscores/internal/errors"

	"github.com/xuri/excelize/v2"
)

// SampleRows is the canonical four-hero scores table, header included
func SampleRows() [][]interface{} {
	return [][]interface{}{
		{"Name", "Score"},
		{"Superman", 10},
		{"Batman", 9},
		{"Flash", 8},
		{"Aquaman", 7},
	}
}

// RowsFromScores builds a header plus one row per score
func RowsFromScores(rows []scores.Row) [][]interface{} {
	out := [][]interface{}{{"Name", "Score"}}
	for _, r := range rows {
		out = append(out, []interface{}{r.Name, r.Score})
	}
	return out
}

// WriteWorkbook writes rows into a single-sheet xlsx workbook
func WriteWorkbook(w io.Writer, sheet string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return errors.Wrapf(err, "failed to rename sheet to %q", sheet)
		}
	}

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "failed to compute cell reference")
		}
		values := row
		if err := f.SetSheetRow(sheet, cellRef, &values); err != nil {
			return errors.Wrapf(err, "failed to write row %d", i+1)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}
