// Package scoresui provides the Bubble Tea high-score viewer.
package scoresui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordrush/internal/leaderboard"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Model implements the leaderboard screen. It runs standalone for the
// scores command and is embedded by the game UI.
type Model struct {
	board *leaderboard.Board

	entries     []model.LeaderboardEntry
	highlightID string
	errMsg      string

	table        table.Model
	confirmClear bool

	width  int
	height int
}

// NewModel constructs a viewer over board. A nil board shows an empty list.
func NewModel(board *leaderboard.Board) *Model {
	m := &Model{board: board}
	m.table = buildTable(nil, 0, 1)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Refresh reloads entries from the board.
func (m *Model) Refresh(ctx context.Context) {
	m.errMsg = ""
	if m.board == nil {
		m.setEntries(nil)
		return
	}
	entries, err := m.board.List(ctx)
	if err != nil {
		m.errMsg = err.Error()
		m.setEntries(nil)
		return
	}
	m.setEntries(entries)
}

// SetHighlight marks the entry with id as the one just recorded.
func (m *Model) SetHighlight(id string) {
	m.highlightID = id
	m.moveCursorToHighlight()
}

// SetSize lays the table out for a width x height area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.layoutTable()
}

// Modal reports whether a confirmation prompt owns the keyboard.
func (m *Model) Modal() bool {
	return m.confirmClear
}

// Entries returns the loaded entries.
func (m *Model) Entries() []model.LeaderboardEntry {
	return m.entries
}

// Rank returns the 1-based position of id, or 0 when it is not listed.
func (m *Model) Rank(id string) int {
	if id == "" {
		return 0
	}
	for i, e := range m.entries {
		if e.ID == id {
			return i + 1
		}
	}
	return 0
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.confirmClear {
			return m.updateConfirm(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "c":
			if len(m.entries) > 0 && m.board != nil {
				m.confirmClear = true
			}
			return m, nil
		case "r":
			m.Refresh(context.Background())
			return m, nil
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmClear = false
		if err := m.board.Clear(context.Background()); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.highlightID = ""
		m.Refresh(context.Background())
	case "n", "N", "esc":
		m.confirmClear = false
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.confirmClear {
		return m.renderConfirm()
	}
	sections := []string{titleStyle.Render("High Scores")}
	if len(m.entries) == 0 {
		sections = append(sections, "", stats.NoScoresText)
	} else {
		sections = append(sections, renderCards(m.entries), tableMutedStyle.Render(m.table.View()))
	}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}
	sections = append(sections, m.renderHelp())
	view := strings.Join(sections, "\n")
	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

func (m *Model) renderHelp() string {
	help := "Scroll: up/down  Clear: c  Reload: r  Back: esc"
	if m.highlightID != "" && m.Rank(m.highlightID) == 0 {
		help = "Your last score did not make the top 10.  " + help
	}
	return headerStyle.Render(help)
}

func (m *Model) renderConfirm() string {
	body := []string{
		cardValueStyle.Render("Clear high scores?"),
		headerStyle.Render(fmt.Sprintf("All %d entries will be removed.", len(m.entries))),
		headerStyle.Render("y to confirm / n to cancel"),
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) setEntries(entries []model.LeaderboardEntry) {
	m.entries = entries
	m.table.SetRows(tableRows(entries))
	m.layoutTable()
	m.moveCursorToHighlight()
}

func (m *Model) moveCursorToHighlight() {
	if rank := m.Rank(m.highlightID); rank > 0 {
		m.table.SetCursor(rank - 1)
		return
	}
	m.table.GotoTop()
}

func (m *Model) layoutTable() {
	width := m.width
	if width <= 0 {
		width = 60
	}
	m.table.SetColumns(tableColumns(m.entries, width))
	m.table.SetWidth(minInt(width, tableWidth(m.entries)))
	m.table.SetHeight(maxInt(1, len(m.entries)+headerHeight()))
}

// headerHeight counts the table header lines, including its bottom border.
func headerHeight() int {
	return lipgloss.Height(tableStyles().Header.Render("#"))
}

func renderCards(entries []model.LeaderboardEntry) string {
	best := entries[0].Score
	total := 0
	for _, e := range entries {
		total += e.Score
	}
	cards := []string{
		metricCard("Entries", fmt.Sprintf("%d", len(entries))),
		metricCard("Best", fmt.Sprintf("%d", best)),
		metricCard("Average", fmt.Sprintf("%.1f", float64(total)/float64(len(entries)))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func buildTable(entries []model.LeaderboardEntry, width, height int) table.Model {
	t := table.New(
		table.WithColumns(tableColumns(entries, width)),
		table.WithRows(tableRows(entries)),
		table.WithHeight(maxInt(1, height)),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles())
	return t
}

func tableRows(entries []model.LeaderboardEntry) []table.Row {
	cells := stats.LeaderboardRows(entries)
	rows := make([]table.Row, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, table.Row(c))
	}
	return rows
}

const (
	rankColWidth  = 4
	scoreColWidth = 7
	dateColWidth  = 19
)

// tableColumns sizes the name column to the widest name, measured in
// terminal cells so CJK names line up.
func tableColumns(entries []model.LeaderboardEntry, width int) []table.Column {
	nameWidth := len("Name")
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Name); w > nameWidth {
			nameWidth = w
		}
	}
	if limit := width - rankColWidth - scoreColWidth - dateColWidth - 4; limit > 4 && nameWidth > limit {
		nameWidth = limit
	}
	return []table.Column{
		{Title: "#", Width: rankColWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: scoreColWidth},
		{Title: "Date", Width: dateColWidth},
	}
}

func tableWidth(entries []model.LeaderboardEntry) int {
	total := 0
	for _, c := range tableColumns(entries, 0) {
		total += c.Width + 1
	}
	return total
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#C89A3A")).
		Bold(true)
	return styles
}

func modalWidth(width int) int {
	return maxInt(40, minInt(width-4, 80))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
