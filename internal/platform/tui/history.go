package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryColumns are the column titles of the match table.
var HistoryColumns = []string{"Date", "Player", "Score", "Winner", "Returns", "Rally", "Peak", "Time"}

// MatchRow formats a record as table cells in HistoryColumns order.
func MatchRow(m storage.MatchRecord) []string {
	date := "-"
	if !m.CreatedAt.IsZero() {
		date = m.CreatedAt.Format("Jan 02 15:04")
	}
	player := m.Player
	if player == "" {
		player = "-"
	}
	return []string{
		date,
		player,
		fmt.Sprintf("%d : %d", m.LeftScore, m.RightScore),
		m.Winner,
		fmt.Sprintf("%d", m.Returns),
		fmt.Sprintf("%d", m.LongestRally),
		fmt.Sprintf("%.1f", m.PeakSpeed),
		fmt.Sprintf("%d:%02d", m.DurationSecs/60, m.DurationSecs%60),
	}
}

// SummaryLine describes the aggregate history in one line.
func SummaryLine(sum storage.Summary) string {
	if sum.Matches == 0 {
		return "No matches recorded yet."
	}
	return fmt.Sprintf("%d matches  Player 1: %d wins  Player 2: %d wins  longest rally %d  peak speed %.1f",
		sum.Matches, sum.LeftWins, sum.RightWins, sum.LongestRally, sum.PeakSpeed)
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	matches  []storage.MatchRecord
	summary  storage.Summary
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history screen over already loaded records.
func NewHistoryModel(matches []storage.MatchRecord, summary storage.Summary, width, height int) HistoryModel {
	m := HistoryModel{
		matches: matches,
		summary: summary,
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	widths := []int{13, 10, 8, 9, 8, 6, 6, 6}
	columns := make([]table.Column, len(HistoryColumns))
	for i, title := range HistoryColumns {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded matches.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, rec := range m.matches {
		rows[i] = MatchRow(rec)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("MATCH HISTORY", m.width)))
	b.WriteString("\n\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(centerText(summaryStyle.Render(SummaryLine(m.summary)), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.matches) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No matches recorded yet.\nFinish a game to fill the history.")
	}
	return m.table.View()
}

// centerText pads every line of text so the block is centered in width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	pad := strings.Repeat(" ", (width-textWidth)/2)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// RunHistory loads the latest matches from store and shows them in a table.
func RunHistory(store *storage.Store, limit, width, height int) error {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		return err
	}
	summary, err := store.Summary()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewHistoryModel(matches, summary, width, height),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run history: %w", err)
	}
	return nil
}
