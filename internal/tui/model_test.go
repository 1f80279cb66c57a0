package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordrush/internal/clock"
	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/generator"
	"github.com/verte-zerg/wordrush/internal/leaderboard"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/store"
	"github.com/verte-zerg/wordrush/internal/wordbank"
)

func newTestModel(t *testing.T, mode model.Mode) (*Model, *leaderboard.Board) {
	t.Helper()
	levels := make([][]string, game.MaxLevel)
	for i := range levels {
		levels[i] = []string{fmt.Sprintf("w%d", i+1)}
	}
	bank, err := wordbank.New("test", levels, generator.NewSeeded(1))
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	st, err := store.OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	board := leaderboard.New(st, clock.System{}, nil)
	m := NewModel(Options{
		Bank:     bank,
		Scheme:   game.Classic,
		Board:    board,
		Settings: model.Settings{Player: "kim", Mode: mode, PracticeStage: 5},
	})
	return m, board
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestEnterStartsSelectedMode(t *testing.T) {
	m, _ := newTestModel(t, model.ModeBreakthrough)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenGame {
		t.Fatalf("expected game screen, got %d", m.screen)
	}
	snap := m.session.Snapshot()
	if snap.Mode != model.ModeBreakthrough || snap.Player != "kim" {
		t.Fatalf("unexpected session: mode=%s player=%s", snap.Mode, snap.Player)
	}
	if snap.Word != "w1" {
		t.Fatalf("expected first word w1, got %q", snap.Word)
	}
}

func TestTypingMatchesWordAndFlashes(t *testing.T) {
	m, _ := newTestModel(t, model.ModeSpeed)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	typeText(m, "w")
	if string(m.inputRunes) != "w" {
		t.Fatalf("expected partial input to stay, got %q", string(m.inputRunes))
	}
	typeText(m, "1")
	if len(m.inputRunes) != 0 {
		t.Fatalf("expected input cleared after match, got %q", string(m.inputRunes))
	}
	if m.flashWord != "w1" || m.flashDelta != game.MaxReward {
		t.Fatalf("expected flash for w1 +%d, got %q %+d", game.MaxReward, m.flashWord, m.flashDelta)
	}
	snap := m.session.Snapshot()
	if snap.Level != 2 || snap.Word != "w2" {
		t.Fatalf("expected level 2 word w2, got level %d word %q", snap.Level, snap.Word)
	}
	if !strings.Contains(m.View(), "✓ w1 +10") {
		t.Fatalf("expected flash line in view:\n%s", m.View())
	}
}

func TestBackspaceAndOvertype(t *testing.T) {
	m, _ := newTestModel(t, model.ModeSpeed)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	typeText(m, "wx")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	typeText(m, "1")
	if m.session.Snapshot().Level != 2 {
		t.Fatalf("expected match after correcting input")
	}

	typeText(m, strings.Repeat("z", 40))
	if got, want := len(m.inputRunes), len("w2")+overtypeSlack; got != want {
		t.Fatalf("expected input capped at %d runes, got %d", want, got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if len(m.inputRunes) != 0 {
		t.Fatalf("expected ctrl+u to clear input")
	}
}

func TestSpeedRunEndsAndRecords(t *testing.T) {
	m, board := newTestModel(t, model.ModeSpeed)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	for level := 1; level <= game.MaxLevel; level++ {
		typeText(m, fmt.Sprintf("w%d", level))
	}

	if m.screen != screenGameOver {
		t.Fatalf("expected game over screen, got %d", m.screen)
	}
	snap := m.session.Snapshot()
	if snap.Score != game.MaxLevel*game.MaxReward {
		t.Fatalf("expected score %d, got %d", game.MaxLevel*game.MaxReward, snap.Score)
	}
	if snap.Entry == nil {
		t.Fatalf("expected leaderboard entry")
	}
	if rank := m.scores.Rank(snap.Entry.ID); rank != 1 {
		t.Fatalf("expected rank 1, got %d", rank)
	}
	entries, err := board.List(t.Context())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "kim" {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	view := m.View()
	for _, want := range []string{"Game over", "100", "10 matched", "Rank #1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("game over view missing %q:\n%s", want, view)
		}
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.session.Snapshot().Score != 0 {
		t.Fatalf("expected play again to start a fresh game")
	}
}

func TestPracticeArrowsChangeStage(t *testing.T) {
	m, _ := newTestModel(t, model.ModePractice)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.session.Snapshot().Stage; got != 6 {
		t.Fatalf("expected stage 6, got %d", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.session.Snapshot().Stage; got != 4 {
		t.Fatalf("expected stage 4, got %d", got)
	}
	if !strings.Contains(m.renderFooter(), "Speed: up/down") {
		t.Fatalf("expected speed help in practice footer")
	}
}

func TestArrowsDoNothingInSpeedMode(t *testing.T) {
	m, _ := newTestModel(t, model.ModeSpeed)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	before := m.session.Snapshot().Stage
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.session.Snapshot().Stage; got != before {
		t.Fatalf("expected locked stage %d, got %d", before, got)
	}
}

func TestEscReturnsToMenuWithoutRecording(t *testing.T) {
	m, board := newTestModel(t, model.ModeSpeed)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(m, "w1")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.screen != screenWelcome {
		t.Fatalf("expected welcome screen, got %d", m.screen)
	}
	if m.session.State() != game.StateIdle {
		t.Fatalf("expected idle session, got %s", m.session.State())
	}
	entries, err := board.List(t.Context())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("abandoned game should not be recorded")
	}
}

func TestModeSelectionWraps(t *testing.T) {
	m, _ := newTestModel(t, model.ModeSpeed)
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if model.Modes[m.modeIndex] != model.ModePractice {
		t.Fatalf("expected wrap to practice, got %s", model.Modes[m.modeIndex])
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if model.Modes[m.modeIndex] != model.ModeSpeed {
		t.Fatalf("expected speed, got %s", model.Modes[m.modeIndex])
	}
}

func TestScoresScreenRoundTrip(t *testing.T) {
	m, _ := newTestModel(t, model.ModeSpeed)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("expected scores screen")
	}
	if !strings.Contains(m.View(), "No high scores yet.") {
		t.Fatalf("expected empty placeholder:\n%s", m.View())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenWelcome {
		t.Fatalf("expected return to welcome, got %d", m.screen)
	}
}

func TestCtrlCStopsGame(t *testing.T) {
	m, _ := newTestModel(t, model.ModeSpeed)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if m.session.State() != game.StateIdle {
		t.Fatalf("expected timers stopped on quit")
	}
	if len(m.sched.timers) != 0 {
		t.Fatalf("expected no active timers, got %d", len(m.sched.timers))
	}
}

func TestRenderStatusFormats(t *testing.T) {
	m := &Model{}
	out := m.renderStatus(game.Snapshot{
		Score:          -5,
		ElapsedSeconds: 12,
		LevelLabel:     "∞ (level 3)",
		StageLabel:     "fast (stage 9)",
	})
	if !containsAll(out, []string{"Score -5", "Time 12s", "Level ∞ (level 3)", "Speed fast (stage 9)"}) {
		t.Fatalf("status missing expected segments: %s", out)
	}
}

func TestRenderCountdown(t *testing.T) {
	if renderCountdown(0, 0) != "" {
		t.Fatalf("expected empty countdown without a deadline")
	}
	out := renderCountdown(2500*time.Millisecond, 5*time.Second)
	if !strings.Contains(out, strings.Repeat("█", countdownBar/2)) || !strings.Contains(out, "2.5s") {
		t.Fatalf("unexpected countdown: %s", out)
	}
}

func TestWordTimeTrendCapsLongRuns(t *testing.T) {
	times := make([]time.Duration, 100)
	for i := range times {
		times[i] = time.Duration(i%7) * time.Second
	}
	if got := len(wordTimeTrend(times)); got != trendLimit {
		t.Fatalf("expected %d glyphs, got %d", trendLimit, got)
	}
	if got := len(wordTimeTrend(times[:3])); got != 3 {
		t.Fatalf("expected raw sparkline for short runs, got %d glyphs", got)
	}
	if wordTimeTrend(nil) != "" {
		t.Fatalf("expected empty trend without words")
	}
}

func TestResultText(t *testing.T) {
	got := resultText(game.Snapshot{Mode: model.ModeBreakthrough, Score: 64, Matched: 10, Missed: 2, ElapsedSeconds: 41})
	if got != "wordrush breakthrough: 64 points, 10/12 words in 41s" {
		t.Fatalf("unexpected result text %q", got)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
