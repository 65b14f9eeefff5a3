package ui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"heroscores/domain/scores"
	"heroscores/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// MockScoreReader is a testify mock of ports.ScoreReaderPort
type MockScoreReader struct {
	mock.Mock
}

func (m *MockScoreReader) ReadRows(ctx context.Context) ([]scores.Row, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]scores.Row)
	return rows, args.Error(1)
}

// blockingReader holds the load until release is closed
type blockingReader struct {
	started chan struct{}
	release chan struct{}
	rows    []scores.Row
}

func newBlockingReader(rows []scores.Row) *blockingReader {
	return &blockingReader{started: make(chan struct{}), release: make(chan struct{}), rows: rows}
}

func (b *blockingReader) ReadRows(ctx context.Context) ([]scores.Row, error) {
	close(b.started)
	<-b.release
	return b.rows, nil
}

func heroRows() []scores.Row {
	return []scores.Row{
		{Name: "Superman", Score: 10},
		{Name: "Batman", Score: 9},
		{Name: "Flash", Score: 8},
		{Name: "Aquaman", Score: 7},
	}
}

func waitLoaded(t *testing.T, b *Board) {
	t.Helper()
	select {
	case <-b.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("board did not finish loading")
	}
}

func entryNames(entries []scores.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestBoardLoadsEntriesInSourceOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	reader := new(MockScoreReader)
	reader.On("ReadRows", mock.Anything).Return(heroRows(), nil).Once()

	board := NewBoard("b1")
	assert.True(t, board.Snapshot().Loading)

	board.Mount(reader, time.Second)
	board.Mount(reader, time.Second) // second mount is a no-op
	waitLoaded(t, board)

	snap := board.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, scores.Descending, snap.Direction)
	assert.Equal(t, []string{"Superman", "Batman", "Flash", "Aquaman"}, entryNames(snap.Entries))
	require.NotNil(t, snap.Summary)
	assert.Equal(t, 10.0, snap.Summary.Max)
	assert.Equal(t, scores.BackgroundPath, snap.Background)
	reader.AssertExpectations(t)
}

func TestBoardLoadFailureLeavesEmptyList(t *testing.T) {
	defer goleak.VerifyNone(t)

	reader := new(MockScoreReader)
	reader.On("ReadRows", mock.Anything).Return(nil, errors.ExternalServiceError("scores http", fmt.Errorf("connection refused")))

	board := NewBoard("b2")
	board.Mount(reader, time.Second)
	waitLoaded(t, board)

	snap := board.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Entries)
	assert.NotNil(t, snap.Entries)
	assert.Nil(t, snap.Summary)
}

func TestBoardToggle(t *testing.T) {
	defer goleak.VerifyNone(t)

	reader := new(MockScoreReader)
	reader.On("ReadRows", mock.Anything).Return(heroRows(), nil)

	board := NewBoard("b3")
	board.Mount(reader, time.Second)
	waitLoaded(t, board)
	original := board.Snapshot().Entries

	snap := board.Toggle()
	assert.Equal(t, scores.Ascending, snap.Direction)
	assert.Equal(t, []string{"Aquaman", "Flash", "Batman", "Superman"}, entryNames(snap.Entries))

	snap = board.Toggle()
	assert.Equal(t, scores.Descending, snap.Direction)
	assert.Equal(t, original, snap.Entries)
}

func TestBoardToggleWhileLoadingIsNoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	reader := newBlockingReader(heroRows())
	board := NewBoard("b4")
	board.Mount(reader, time.Second)
	<-reader.started

	snap := board.Toggle()
	assert.True(t, snap.Loading)
	assert.Equal(t, scores.InitialDirection, snap.Direction)

	close(reader.release)
	waitLoaded(t, board)
	assert.Len(t, board.Snapshot().Entries, 4)
}

func TestBoardTornDownBeforeLoadDiscardsEntries(t *testing.T) {
	defer goleak.VerifyNone(t)

	reader := newBlockingReader(heroRows())
	board := NewBoard("b5")
	board.Mount(reader, time.Second)
	<-reader.started

	board.Close()
	close(reader.release)
	waitLoaded(t, board)

	snap := board.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Entries)
}

func TestBoardSnapshotIsACopy(t *testing.T) {
	reader := new(MockScoreReader)
	reader.On("ReadRows", mock.Anything).Return(heroRows(), nil)

	board := NewBoard("b6")
	board.Mount(reader, time.Second)
	waitLoaded(t, board)

	snap := board.Snapshot()
	snap.Entries[0].Name = "Lex Luthor"

	assert.Equal(t, "Superman", board.Snapshot().Entries[0].Name)
}

func TestBoardsOpenAndSweep(t *testing.T) {
	defer goleak.VerifyNone(t)

	reader := new(MockScoreReader)
	reader.On("ReadRows", mock.Anything).Return(heroRows(), nil)

	now := time.Now()
	registry := NewBoards(reader, time.Minute, time.Second, 0)
	registry.now = func() time.Time { return now }

	first := registry.Open()
	waitLoaded(t, first)

	again, ok := registry.Get(first.ID)
	assert.True(t, ok)
	assert.Same(t, first, again)

	// every page view gets its own board
	second := registry.Open()
	assert.NotEqual(t, first.ID, second.ID)
	waitLoaded(t, second)
	assert.Equal(t, 2, registry.Len())
	reader.AssertNumberOfCalls(t, "ReadRows", 2)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 2, registry.Sweep())
	assert.Equal(t, 0, registry.Len())

	assert.False(t, registry.Touch(first.ID))

	registry.Close()
}

func TestBoardsEvictsLeastRecentlySeenWhenFull(t *testing.T) {
	defer goleak.VerifyNone(t)

	reader := new(MockScoreReader)
	reader.On("ReadRows", mock.Anything).Return(heroRows(), nil)

	now := time.Now()
	registry := NewBoards(reader, time.Hour, time.Second, 2)
	registry.now = func() time.Time { return now }

	first := registry.Open()
	now = now.Add(time.Second)
	second := registry.Open()
	now = now.Add(time.Second)
	require.True(t, registry.Touch(first.ID))
	now = now.Add(time.Second)
	third := registry.Open()

	for _, b := range []*Board{first, second, third} {
		waitLoaded(t, b)
	}

	assert.Equal(t, 2, registry.Len())
	assert.True(t, registry.Touch(first.ID))
	assert.False(t, registry.Touch(second.ID))
	assert.True(t, registry.Touch(third.ID))

	registry.Close()
}

func TestBoardsRunSweepsUntilCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	reader := new(MockScoreReader)
	reader.On("ReadRows", mock.Anything).Return(heroRows(), nil)

	registry := NewBoards(reader, time.Nanosecond, time.Second, 0)
	board := registry.Open()
	waitLoaded(t, board)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		registry.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return registry.Len() == 0 }, 5*time.Second, time.Millisecond)
	cancel()
	<-done
}
