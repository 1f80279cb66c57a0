package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordrush/internal/clock"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/store"
)

func newTestBoard(t *testing.T) (*Board, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "wordrush.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	clk := clock.NewFake(time.Date(2026, 10, 19, 9, 30, 0, 0, time.Local))
	return New(st, clk, nil), st
}

func TestBoard_List_EmptyWhenMissing(t *testing.T) {
	board, _ := newTestBoard(t)

	entries, err := board.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func TestBoard_List_CorruptDataIsEmpty(t *testing.T) {
	board, st := newTestBoard(t)
	ctx := context.Background()
	require.NoError(t, st.Put(ctx, StorageKey, []byte("{not json")))

	entries, err := board.List(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestBoard_Record_KeepsTopTen(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()

	scores := []int{5, 80, 12, 100, 33, -10, 47, 61, 9, 72, 18, 90}
	for i, s := range scores {
		_, err := board.Record(ctx, fmt.Sprintf("p%d", i), s)
		require.NoError(t, err)
	}

	entries, err := board.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, MaxEntries)

	got := make([]int, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Score)
	}
	require.Equal(t, []int{100, 90, 80, 72, 61, 47, 33, 18, 12, 9}, got)
}

func TestBoard_Record_TieKeepsEarlierEntryFirst(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()

	for i := 0; i < MaxEntries; i++ {
		_, err := board.Record(ctx, fmt.Sprintf("p%d", i), 100-i*10)
		require.NoError(t, err)
	}
	// Equal to the 10th-ranked score (10): the newcomer ranks below and is cut.
	_, err := board.Record(ctx, "late", 10)
	require.NoError(t, err)

	entries, err := board.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, MaxEntries)
	require.Equal(t, "p9", entries[9].Name)
	require.Equal(t, 10, entries[9].Score)
}

func TestBoard_Record_StampsEntry(t *testing.T) {
	board, _ := newTestBoard(t)

	entry, err := board.Record(context.Background(), "ada", 42)
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)
	require.Equal(t, "2026-10-19 09:30:00", entry.Date)

	entries, err := board.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.LeaderboardEntry{entry}, entries)
}

type failingBackend struct{}

func (failingBackend) Get(context.Context, string) ([]byte, error) { return nil, store.ErrNotFound }
func (failingBackend) Put(context.Context, string, []byte) error { return errors.New("quota exceeded") }
func (failingBackend) Delete(context.Context, string) error { return nil }

func TestBoard_Record_SurfacesPersistenceFailure(t *testing.T) {
	board := New(failingBackend{}, clock.System{}, nil)

	entry, err := board.Record(context.Background(), "ada", 42)
	require.Error(t, err)
	require.Contains(t, err.Error(), "quota exceeded")
	require.Equal(t, 42, entry.Score)
}

func TestBoard_MergeAndClear(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()

	_, err := board.Record(ctx, "ada", 50)
	require.NoError(t, err)
	merged, err := board.Merge(ctx, []model.LeaderboardEntry{{Name: "bob", Score: 70, Date: "yesterday"}})
	require.NoError(t, err)
	require.Len(t, merged, 2)
	require.Equal(t, "bob", merged[0].Name)
	require.NotEmpty(t, merged[0].ID)

	require.NoError(t, board.Clear(ctx))
	entries, err := board.List(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestParseExport(t *testing.T) {
	data := []byte(`[{"name":"小明","score":87,"date":"2024/5/1 下午3:00:00"},{"name":"","score":1},{"name":"amy","score":"64"}]`)
	entries, err := ParseExport(data)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "小明", entries[0].Name)
	require.Equal(t, 87, entries[0].Score)
	require.Equal(t, 64, entries[1].Score)
}

func TestParseExport_LocalStorageDump(t *testing.T) {
	data := []byte(`{"typingHighScores":"[{\"name\":\"amy\",\"score\":12,\"date\":\"d\"}]"}`)
	entries, err := ParseExport(data)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 12, entries[0].Score)

	_, err = ParseExport([]byte(`{"other":1}`))
	require.Error(t, err)
}
