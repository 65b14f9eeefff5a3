package ui

import (
	"context"
	"sync"
	"time"

	"heroscores/internal"
	"heroscores/ports"

	"github.com/google/uuid"
)

// Boards tracks one Board per page view and evicts idle ones
type Boards struct {
	mu     sync.Mutex
	boards map[string]*Board

	reader       ports.ScoreReaderPort
	ttl          time.Duration
	fetchTimeout time.Duration
	max          int
	now          func() time.Time
	logger       *internal.Logger
}

// NewBoards creates an empty registry holding at most max boards;
// max <= 0 means unbounded
func NewBoards(reader ports.ScoreReaderPort, ttl, fetchTimeout time.Duration, max int) *Boards {
	return &Boards{
		boards:       make(map[string]*Board),
		reader:       reader,
		ttl:          ttl,
		fetchTimeout: fetchTimeout,
		max:          max,
		now:          time.Now,
		logger:       internal.DefaultLogger.Named("Boards"),
	}
}

// Get returns a live board and marks it as seen
func (r *Boards) Get(id string) (*Board, bool) {
	r.mu.Lock()
	board, ok := r.boards[id]
	r.mu.Unlock()
	if ok {
		board.touch(r.now())
	}
	return board, ok
}

// Touch reports whether id names a live board, marking it as seen
func (r *Boards) Touch(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// Open mounts a fresh board for a new page view. When the registry is full
// the least recently seen board is torn down to make room.
func (r *Boards) Open() *Board {
	r.Sweep()

	board := NewBoard(uuid.NewString())
	board.touch(r.now())

	r.mu.Lock()
	var evicted *Board
	if r.max > 0 && len(r.boards) >= r.max {
		evicted = r.oldestLocked()
		delete(r.boards, evicted.ID)
	}
	r.boards[board.ID] = board
	r.mu.Unlock()

	if evicted != nil {
		evicted.Close()
		r.logger.Warn("Board limit %d reached, evicted board %s", r.max, evicted.ID)
	}

	board.Mount(r.reader, r.fetchTimeout)
	r.logger.Debug("Mounted board %s", board.ID)
	return board
}

func (r *Boards) oldestLocked() *Board {
	var oldest *Board
	var oldestSeen time.Time
	for _, board := range r.boards {
		seen := board.seenAt()
		if oldest == nil || seen.Before(oldestSeen) {
			oldest, oldestSeen = board, seen
		}
	}
	return oldest
}

// Sweep closes and forgets boards idle for longer than the TTL
func (r *Boards) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var expired []*Board
	for id, board := range r.boards {
		if now.Sub(board.seenAt()) > r.ttl {
			expired = append(expired, board)
			delete(r.boards, id)
		}
	}
	r.mu.Unlock()

	for _, board := range expired {
		board.Close()
		r.logger.Debug("Evicted idle board %s", board.ID)
	}
	return len(expired)
}

// Run sweeps on every interval until ctx is done
func (r *Boards) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Info("Swept %d idle boards", n)
			}
		}
	}
}

// Len returns the number of live boards
func (r *Boards) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}

// Close tears down every board
func (r *Boards) Close() {
	r.mu.Lock()
	boards := r.boards
	r.boards = make(map[string]*Board)
	r.mu.Unlock()

	for _, board := range boards {
		board.Close()
	}
}
