package ui

import (
	"context"
	"slices"
	"sync"
	"time"

	"heroscores/domain/scores"
	"heroscores/internal"
	"heroscores/ports"
)

// Board is one page view's private state: the entry list, the loading
// flag and the sort direction. The list is replaced wholesale, never mutated.
type Board struct {
	ID string

	mu        sync.RWMutex
	entries   []scores.Entry
	loading   bool
	direction scores.Direction
	lastSeen  time.Time

	ctx    context.Context
	cancel context.CancelFunc
	mount  sync.Once
	done   chan struct{}
	logger *internal.Logger
}

// Snapshot is an immutable copy of a board for rendering
type Snapshot struct {
	ID         string           `json:"id"`
	Loading    bool             `json:"loading"`
	Direction  scores.Direction `json:"direction"`
	Entries    []scores.Entry   `json:"entries"`
	Summary    *scores.Summary  `json:"summary,omitempty"`
	Background string           `json:"background"`
}

// NewBoard creates an unmounted board in the loading state
func NewBoard(id string) *Board {
	ctx, cancel := context.WithCancel(context.Background())
	return &Board{
		ID:        id,
		entries:   []scores.Entry{},
		loading:   true,
		direction: scores.InitialDirection,
		lastSeen:  time.Now(),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
		logger:    internal.DefaultLogger.Named("Board"),
	}
}

// Mount starts the single asynchronous load. Later calls are no-ops.
func (b *Board) Mount(reader ports.ScoreReaderPort, timeout time.Duration) {
	b.mount.Do(func() {
		go b.load(reader, timeout)
	})
}

func (b *Board) load(reader ports.ScoreReaderPort, timeout time.Duration) {
	defer close(b.done)
	defer func() {
		b.mu.Lock()
		b.loading = false
		b.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(b.ctx, timeout)
	defer cancel()

	rows, err := reader.ReadRows(ctx)
	if err != nil {
		// degrade to an empty board; the page still finishes loading
		b.logger.Error("Error reading scores workbook for board %s: %v", b.ID, err)
		return
	}
	entries := scores.FromRows(rows)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctx.Err() != nil {
		b.logger.Debug("Board %s torn down before load finished, discarding %d entries", b.ID, len(entries))
		return
	}
	b.entries = entries
	b.logger.Debug("Board %s loaded %d entries", b.ID, len(entries))
}

// Done is closed once the load has finished, successfully or not
func (b *Board) Done() <-chan struct{} {
	return b.done
}

// Toggle flips the sort direction and swaps in the reordered list.
// While loading there is nothing to sort and the board is unchanged.
func (b *Board) Toggle() Snapshot {
	b.mu.Lock()
	if !b.loading {
		b.entries, b.direction = scores.Toggle(b.entries, b.direction)
	}
	b.mu.Unlock()
	return b.Snapshot()
}

// Snapshot copies the current state
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snap := Snapshot{
		ID:         b.ID,
		Loading:    b.loading,
		Direction:  b.direction,
		Entries:    slices.Clone(b.entries),
		Background: scores.BackgroundPath,
	}
	if summary, ok := scores.Summarize(b.entries); ok {
		snap.Summary = &summary
	}
	return snap
}

// Close tears the board down; an in-flight load will not commit
func (b *Board) Close() {
	b.cancel()
}

func (b *Board) touch(now time.Time) {
	b.mu.Lock()
	b.lastSeen = now
	b.mu.Unlock()
}

func (b *Board) seenAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastSeen
}
