// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/leaderboard"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/scoresui"
	"github.com/verte-zerg/wordrush/internal/stats"
	"github.com/verte-zerg/wordrush/internal/wordbank"
)

type screen int

const (
	screenWelcome screen = iota
	screenGame
	screenGameOver
	screenScores
)

const (
	flashDuration = 300 * time.Millisecond
	// overtypeSlack bounds how far input may run past the current word.
	overtypeSlack = 8
	countdownBar  = 20

	// Long practice runs plot a smoothed tail of their word times.
	trendLimit  = 40
	trendWindow = 5
)

type flashDoneMsg struct{}

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = currentWordStyle.Underline(true)
	flashStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	scoreStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Options carries the dependencies of the game UI.
type Options struct {
	Bank     *wordbank.Bank
	Scheme   game.Scheme
	Board    *leaderboard.Board
	Logger   *zap.Logger
	Settings model.Settings
}

// Model implements the Bubble Tea game UI.
type Model struct {
	session *game.Session
	sched   *teaScheduler
	scores  *scoresui.Model
	logger  *zap.Logger

	screen     screen
	prevScreen screen
	width      int
	height     int

	nameInput textinput.Model
	modeIndex int

	inputRunes []rune
	flashWord  string
	flashDelta int
	flashUntil time.Time
	notice     string
}

// NewModel constructs the game UI on the welcome screen.
func NewModel(opts Options) *Model {
	m := &Model{
		sched:  newTeaScheduler(),
		logger: opts.Logger,
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	anonymous := game.DefaultPlayer
	if opts.Bank != nil {
		anonymous = game.AnonymousName(opts.Bank.Name())
	}
	var recorder game.Recorder
	if opts.Board != nil {
		recorder = opts.Board
	}
	m.session = game.New(m.sched, opts.Bank, game.Options{
		Scheme:        opts.Scheme,
		Recorder:      recorder,
		Logger:        m.logger,
		PracticeStage: opts.Settings.PracticeStage,
		Anonymous:     anonymous,
		OnEvent:       m.handleEvent,
	})
	m.scores = scoresui.NewModel(opts.Board)
	m.nameInput = newNameInput(opts.Settings.Player, anonymous)
	m.modeIndex = modeIndex(opts.Settings.Mode)
	return m
}

func newNameInput(value, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = "Name: "
	input.Placeholder = placeholder
	input.CharLimit = 32
	input.Width = 32
	input.Cursor.SetMode(cursor.CursorBlink)
	input.SetValue(value)
	input.Focus()
	return input
}

func modeIndex(mode model.Mode) int {
	for i, candidate := range model.Modes {
		if candidate == mode {
			return i
		}
	}
	return 0
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scores.SetSize(msg.Width, msg.Height)
	case timerMsg:
		m.sched.handle(msg)
	case flashDoneMsg:
		if !m.sched.Now().Before(m.flashUntil) {
			m.flashWord = ""
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.session.Reset()
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)
	default:
		if m.screen == screenWelcome {
			m.nameInput, cmd = m.nameInput.Update(msg)
		}
	}
	return m, tea.Batch(cmd, m.sched.flush())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.screen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenGameOver:
		return m.updateGameOver(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return nil
}

func (m *Model) updateWelcome(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.startGame()
		return nil
	case tea.KeyUp:
		m.moveMode(-1)
		return nil
	case tea.KeyDown:
		m.moveMode(1)
		return nil
	case tea.KeyTab:
		m.openScores()
		return nil
	case tea.KeyEsc:
		return tea.Quit
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return cmd
}

func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		return m.toMenu()
	case tea.KeyCtrlR:
		m.restart()
	case tea.KeyCtrlU:
		m.inputRunes = nil
	case tea.KeyUp, tea.KeyPgUp:
		m.shiftStage(1)
	case tea.KeyDown, tea.KeyPgDown:
		m.shiftStage(-1)
	case tea.KeyBackspace, tea.KeyDelete:
		m.handleBackspace()
	case tea.KeySpace:
		m.handleRunes([]rune{' '})
	case tea.KeyRunes:
		m.handleRunes(msg.Runes)
	}
	return nil
}

func (m *Model) updateGameOver(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "r":
		m.restart()
	case "esc", "m":
		return m.toMenu()
	case "tab", "s":
		m.openScores()
	case "y":
		m.copyResult()
	case "q":
		return tea.Quit
	}
	return nil
}

func (m *Model) updateScores(msg tea.KeyMsg) tea.Cmd {
	if !m.scores.Modal() {
		switch msg.String() {
		case "esc", "tab", "q":
			m.screen = m.prevScreen
			if m.screen == screenWelcome {
				return m.nameInput.Focus()
			}
			return nil
		}
	}
	_, cmd := m.scores.Update(msg)
	return cmd
}

func (m *Model) copyResult() {
	if err := clipboard.WriteAll(resultText(m.session.Snapshot())); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		m.notice = "Copy failed: " + err.Error()
		return
	}
	m.notice = "Result copied to clipboard."
}

func resultText(snap game.Snapshot) string {
	return fmt.Sprintf("wordrush %s: %d points, %d/%d words in %ds",
		strings.ToLower(snap.Mode.Title()), snap.Score, snap.Matched, snap.Matched+snap.Missed, snap.ElapsedSeconds)
}

func (m *Model) moveMode(delta int) {
	count := len(model.Modes)
	m.modeIndex = (m.modeIndex + delta + count) % count
}

func (m *Model) startGame() {
	m.notice = ""
	if err := m.session.Start(m.nameInput.Value(), model.Modes[m.modeIndex]); err != nil {
		m.notice = err.Error()
		return
	}
	m.nameInput.Blur()
	m.screen = screenGame
}

func (m *Model) restart() {
	m.notice = ""
	m.flashWord = ""
	if err := m.session.Restart(); err != nil {
		m.notice = err.Error()
		return
	}
	m.screen = screenGame
}

func (m *Model) toMenu() tea.Cmd {
	m.session.Reset()
	m.inputRunes = nil
	m.flashWord = ""
	m.notice = ""
	m.screen = screenWelcome
	return m.nameInput.Focus()
}

func (m *Model) openScores() {
	m.prevScreen = m.screen
	m.nameInput.Blur()
	m.scores.Refresh(context.Background())
	m.screen = screenScores
}

func (m *Model) shiftStage(delta int) {
	snap := m.session.Snapshot()
	if !snap.SpeedAdjustable {
		return
	}
	err := m.session.SetStage(snap.Stage + delta)
	if err != nil && !errors.Is(err, game.ErrStageOutOfRange) {
		m.logger.Debug("stage change rejected", zap.Error(err))
	}
}

func (m *Model) handleBackspace() {
	if len(m.inputRunes) == 0 {
		return
	}
	m.inputRunes = m.inputRunes[:len(m.inputRunes)-1]
}

// handleRunes appends typed runes and offers the input to the session after
// each one, so a word matches the moment its last rune lands.
func (m *Model) handleRunes(runes []rune) {
	if m.session.State() != game.StateRunning {
		return
	}
	limit := len([]rune(m.session.Snapshot().Word)) + overtypeSlack
	for _, r := range runes {
		if len(m.inputRunes) >= limit {
			return
		}
		m.inputRunes = append(m.inputRunes, r)
		if m.session.Submit(string(m.inputRunes)) {
			m.inputRunes = nil
			return
		}
	}
}

func (m *Model) handleEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventWordShown:
		m.inputRunes = nil
	case game.EventMatched:
		m.flashWord = ev.Word
		m.flashDelta = ev.Delta
		m.flashUntil = m.sched.Now().Add(flashDuration)
		m.sched.enqueue(tea.Tick(flashDuration, func(time.Time) tea.Msg {
			return flashDoneMsg{}
		}))
	case game.EventEnded:
		m.inputRunes = nil
		m.screen = screenGameOver
		highlight := ""
		if entry := m.session.Snapshot().Entry; entry != nil {
			highlight = entry.ID
		}
		m.scores.Refresh(context.Background())
		m.scores.SetHighlight(highlight)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.screen == screenScores {
		return m.scores.View()
	}
	var body string
	switch m.screen {
	case screenWelcome:
		body = m.renderWelcome()
	case screenGame:
		body = m.renderGame()
	case screenGameOver:
		body = m.renderGameOver()
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return body + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	bodyHeight := m.height - 1
	content := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return content + "\n" + footerLine
}

func (m *Model) renderWelcome() string {
	lines := []string{
		titleStyle.Render("wordrush"),
		mutedStyle.Render("Type each word before its countdown runs out."),
		"",
		m.nameInput.View(),
		"",
		m.renderModeTabs(),
		mutedStyle.Render(modeBlurb(model.Modes[m.modeIndex])),
	}
	if m.notice != "" {
		lines = append(lines, "", incorrectStyle.Render(m.notice))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderModeTabs() string {
	parts := make([]string, 0, len(model.Modes))
	for i, mode := range model.Modes {
		if i == m.modeIndex {
			parts = append(parts, activeNavStyle.Render(mode.Title()))
		} else {
			parts = append(parts, inactiveNavStyle.Render(mode.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func modeBlurb(mode model.Mode) string {
	switch mode {
	case model.ModeSpeed:
		return "Ten levels at a fixed speed. Scores go on the leaderboard."
	case model.ModeBreakthrough:
		return "Ten levels. The countdown shortens with every level."
	case model.ModePractice:
		return "Endless. Change the speed at any time with up/down."
	default:
		return ""
	}
}

func (m *Model) renderGame() string {
	snap := m.session.Snapshot()
	lines := []string{m.renderStatus(snap), ""}
	if m.flashWord != "" {
		lines = append(lines, flashStyle.Render(fmt.Sprintf("✓ %s %+d", m.flashWord, m.flashDelta)))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines,
		m.renderWord(snap.Word),
		"",
		renderCountdown(snap.Remaining(m.sched.Now()), snap.Deadline),
	)
	if m.notice != "" {
		lines = append(lines, incorrectStyle.Render(m.notice))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus(snap game.Snapshot) string {
	segments := []string{
		fmt.Sprintf("Score %d", snap.Score),
		fmt.Sprintf("Time %ds", snap.ElapsedSeconds),
		fmt.Sprintf("Level %s", snap.LevelLabel),
		fmt.Sprintf("Speed %s", snap.StageLabel),
	}
	return footerStyle.Render(strings.Join(segments, "  ·  "))
}

func (m *Model) renderWord(word string) string {
	targetRunes := []rune(word)
	cursorIndex := -1
	if len(m.inputRunes) < len(targetRunes) {
		cursorIndex = len(m.inputRunes)
	}
	styled := buildStyledRunes(targetRunes, m.inputRunes, cursorIndex)
	contentWidth := int(float64(m.width) * 0.70)
	return wrapStyledRunes(styled, contentWidth)
}

func renderCountdown(remaining, total time.Duration) string {
	if total <= 0 {
		return ""
	}
	filled := int(float64(countdownBar) * float64(remaining) / float64(total))
	if filled > countdownBar {
		filled = countdownBar
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", countdownBar-filled)
	style := correctStyle
	if filled*4 <= countdownBar {
		style = incorrectStyle
	}
	return style.Render(bar) + mutedStyle.Render(fmt.Sprintf(" %.1fs", remaining.Seconds()))
}

func (m *Model) renderGameOver() string {
	snap := m.session.Snapshot()
	summary := stats.Summarize(snap.Matched, snap.Missed, time.Duration(snap.ElapsedSeconds)*time.Second, snap.WordTimes)
	lines := []string{
		titleStyle.Render("Game over"),
		"",
		"Final score " + scoreStyle.Render(fmt.Sprintf("%d", snap.Score)),
		mutedStyle.Render(fmt.Sprintf("%s · %s · %ds", snap.Mode.Title(), snap.Player, snap.ElapsedSeconds)),
		"",
		fmt.Sprintf("Words %d matched, %d missed (%.0f%%)", summary.Matched, summary.Missed, summary.HitRate*100),
		fmt.Sprintf("Pace %.1f words/min, average %.2fs, best %.2fs", summary.WordsPerMinute, summary.AvgWordTime.Seconds(), summary.BestWordTime.Seconds()),
	}
	if spark := wordTimeTrend(snap.WordTimes); spark != "" {
		lines = append(lines, mutedStyle.Render("Word times ")+spark)
	}
	if line := m.renderSaveResult(snap); line != "" {
		lines = append(lines, "", line)
	}
	if m.notice != "" {
		lines = append(lines, mutedStyle.Render(m.notice))
	}
	return strings.Join(lines, "\n")
}

func wordTimeTrend(times []time.Duration) string {
	values := stats.Seconds(times)
	if len(values) > trendLimit {
		values = stats.MovingAverage(values, trendWindow)[len(values)-trendLimit:]
	}
	return stats.Sparkline(values)
}

func (m *Model) renderSaveResult(snap game.Snapshot) string {
	switch {
	case snap.SaveErr != nil:
		return incorrectStyle.Render("Leaderboard not saved: " + snap.SaveErr.Error())
	case snap.Entry != nil:
		if rank := m.scores.Rank(snap.Entry.ID); rank > 0 {
			return flashStyle.Render(fmt.Sprintf("New high score! Rank #%d", rank))
		}
		return mutedStyle.Render("Not in the top 10 this time.")
	default:
		return ""
	}
}

func (m *Model) renderFooter() string {
	var help string
	switch m.screen {
	case screenWelcome:
		help = "Mode: up/down  Start: enter  High scores: tab  Quit: esc"
	case screenGame:
		help = "Menu: esc  Restart: ctrl+r  Clear: ctrl+u"
		if m.session.Snapshot().SpeedAdjustable {
			help = "Speed: up/down  " + help
		}
	case screenGameOver:
		help = "Play again: enter  Menu: esc  High scores: tab  Copy: y  Quit: q"
	}
	return footerStyle.Render(help)
}
