package ports

import (
	"context"
	"io"

	"heroscores/domain/scores"
)

// ScoreSourcePort opens the raw scores workbook bytes
type ScoreSourcePort interface {
	// Open returns the workbook stream; callers close it
	Open(ctx context.Context) (io.ReadCloser, error)
	// Describe names the source for logs
	Describe() string
}

// ScoreReaderPort decodes the workbook into data rows (header excluded)
type ScoreReaderPort interface {
	ReadRows(ctx context.Context) ([]scores.Row, error)
}
