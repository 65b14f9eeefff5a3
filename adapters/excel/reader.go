package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"heroscores/domain/scores"
	"heroscores/internal"
	"heroscores/internal/errors"
	"heroscores/ports"

	"github.com/xuri/excelize/v2"
)

// ScoreReader decodes a scores workbook: first sheet, header row dropped,
// at most scores.MaxEntries data rows, column A name, column B score
type ScoreReader struct {
	source ports.ScoreSourcePort
	format Format
	logger *internal.Logger
}

// NewScoreReader creates a reader over the given source
func NewScoreReader(source ports.ScoreSourcePort, format Format) *ScoreReader {
	return &ScoreReader{
		source: source,
		format: format,
		logger: internal.DefaultLogger.Named("ScoreReader"),
	}
}

// ReadRows fetches and decodes the workbook. Short workbooks yield fewer rows;
// a non-numeric score fails the whole read.
func (r *ScoreReader) ReadRows(ctx context.Context) ([]scores.Row, error) {
	startTime := time.Now()
	r.logger.Debug("Reading %s scores from %s", r.format, r.source.Describe())

	body, err := r.source.Open(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", r.source.Describe())
	}
	defer body.Close()

	var rows [][]string
	switch r.format {
	case FormatCSV:
		rows, err = readCSVRows(body)
	case FormatXLSX:
		rows, err = readExcelRows(body)
	default:
		return nil, errors.ValidationError(fmt.Sprintf("unsupported file type: %s", r.format))
	}
	if err != nil {
		return nil, err
	}

	out, err := processRows(rows)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Read %d score rows from %s in %.2fms", len(out), r.source.Describe(),
		float64(time.Since(startTime).Nanoseconds())/1e6)
	return out, nil
}

// readExcelRows returns every row of the first sheet in workbook order
func readExcelRows(body io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(body)
	if err != nil {
		return nil, errors.DecodeError("failed to decode workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.ValidationError("workbook has no sheets")
	}

	// raw values: a styled score such as 1500 shown as "1,500" must still parse
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.DecodeError(fmt.Sprintf("failed to read sheet %q", sheets[0]), err)
	}
	return rows, nil
}

func readCSVRows(body io.Reader) ([][]string, error) {
	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.DecodeError("failed to decode CSV", err)
	}
	return rows, nil
}

// processRows drops the header and converts up to MaxEntries rows.
// Names are kept verbatim since they also derive the logo path.
func processRows(rows [][]string) ([]scores.Row, error) {
	out := make([]scores.Row, 0, scores.MaxEntries)
	for i := 1; i < len(rows) && len(out) < scores.MaxEntries; i++ {
		row := rows[i]
		name := cell(row, 0)
		raw := strings.TrimSpace(cell(row, 1))

		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			// i+1: spreadsheet rows are 1-indexed
			return nil, errors.ValidationError(fmt.Sprintf("row %d: score %q for %q is not numeric", i+1, raw, name))
		}

		out = append(out, scores.Row{Name: name, Score: score})
	}
	return out, nil
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
