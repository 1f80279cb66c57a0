package scoresui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordrush/internal/clock"
	"github.com/verte-zerg/wordrush/internal/leaderboard"
	"github.com/verte-zerg/wordrush/internal/stats"
	"github.com/verte-zerg/wordrush/internal/store"
)

func newBoard(t *testing.T) *leaderboard.Board {
	t.Helper()
	st, err := store.OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	clk := clock.NewFake(time.Date(2026, 10, 19, 20, 0, 0, 0, time.Local))
	return leaderboard.New(st, clk, nil)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEmptyBoardShowsPlaceholder(t *testing.T) {
	m := NewModel(newBoard(t))
	m.Refresh(context.Background())
	if !strings.Contains(m.View(), stats.NoScoresText) {
		t.Fatalf("expected placeholder, got:\n%s", m.View())
	}
}

func TestHighlightMovesCursorToRecordedEntry(t *testing.T) {
	board := newBoard(t)
	ctx := context.Background()
	for _, rec := range []struct {
		name  string
		score int
	}{{"alice", 90}, {"小明", 70}, {"carol", 40}} {
		if _, err := board.Record(ctx, rec.name, rec.score); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	entries, err := board.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	m := NewModel(board)
	m.SetSize(100, 30)
	m.Refresh(ctx)
	m.SetHighlight(entries[1].ID)

	if got := m.table.Cursor(); got != 1 {
		t.Fatalf("expected cursor on row 1, got %d", got)
	}
	if got := m.Rank(entries[1].ID); got != 2 {
		t.Fatalf("expected rank 2, got %d", got)
	}
	if got := m.Rank("missing"); got != 0 {
		t.Fatalf("expected rank 0 for unknown id, got %d", got)
	}
	view := m.View()
	for _, want := range []string{"alice", "小明", "carol", "Best", "90"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestFullBoardShowsEveryRow(t *testing.T) {
	board := newBoard(t)
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		if _, err := board.Record(ctx, fmt.Sprintf("player%02d", i), 100-i); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	m := NewModel(board)
	m.SetSize(120, 60)
	m.Refresh(ctx)

	view := m.View()
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("player%02d", i)
		if !strings.Contains(view, name) {
			t.Fatalf("view missing %q:\n%s", name, view)
		}
	}
}

func TestClearAsksForConfirmation(t *testing.T) {
	board := newBoard(t)
	ctx := context.Background()
	if _, err := board.Record(ctx, "alice", 50); err != nil {
		t.Fatalf("record: %v", err)
	}
	m := NewModel(board)
	m.Refresh(ctx)

	m.Update(keyRunes("c"))
	if !m.Modal() {
		t.Fatalf("expected confirmation prompt")
	}
	m.Update(keyRunes("n"))
	if m.Modal() || len(m.Entries()) != 1 {
		t.Fatalf("cancel should keep entries")
	}

	m.Update(keyRunes("c"))
	m.Update(keyRunes("y"))
	if len(m.Entries()) != 0 {
		t.Fatalf("expected entries cleared, got %d", len(m.Entries()))
	}
	entries, err := board.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected board cleared, got %d", len(entries))
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(nil)
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
