package app

import (
	"context"
	"time"

	"heroscores/domain/scores"
	"heroscores/internal"
	"heroscores/internal/errors"
	"heroscores/ports"

	"golang.org/x/sync/semaphore"
)

// ScoreService bounds how many workbook loads run at once across all boards
type ScoreService struct {
	reader ports.ScoreReaderPort
	loads  *semaphore.Weighted
	logger *internal.Logger
}

// NewScoreService creates a service allowing maxConcurrent simultaneous loads
func NewScoreService(reader ports.ScoreReaderPort, maxConcurrent int64) *ScoreService {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &ScoreService{
		reader: reader,
		loads:  semaphore.NewWeighted(maxConcurrent),
		logger: internal.DefaultLogger.Named("ScoreService"),
	}
}

// ReadRows waits for a load slot, then reads the workbook
func (s *ScoreService) ReadRows(ctx context.Context) ([]scores.Row, error) {
	waitStart := time.Now()
	if err := s.loads.Acquire(ctx, 1); err != nil {
		// the caller gave up (cancelled or past its deadline) before a slot freed
		return nil, errors.WithCode(errors.CodeExternalService, errors.Wrap(err, "waiting for a load slot"))
	}
	defer s.loads.Release(1)

	if waited := time.Since(waitStart); waited > 100*time.Millisecond {
		s.logger.Debug("Waited %s for a load slot", waited)
	}
	return s.reader.ReadRows(ctx)
}
