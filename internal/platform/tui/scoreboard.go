package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

const (
	minWidthForSidebar = 70
	sidebarWidth       = 20
	maxScores          = 100
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Replay   key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevGame, k.NextGame, k.Replay, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevGame, k.NextGame},
		{k.Replay, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("right", "d", "tab"),
			key.WithHelp("→/tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("left", "a", "shift+tab"),
			key.WithHelp("←", "prev game"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play this seed"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the best scores of each game. Choosing a score ends
// the model with that entry, so the caller can start the same game again
// from its seed.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	scores     []storage.ScoreEntry
	stats      map[string]*storage.GameStats
	err        error
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	chosen     *storage.ScoreEntry
	quitting   bool
}

// NewScoreboardModel creates a scoreboard for a terminal of the given size.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()

	if store != nil {
		m.stats, m.err = store.AllGamesStats()
	}
	m.loadScores()
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 7},
		{Title: "Seed", Width: 17},
		{Title: "Date", Width: 13},
	}

	height := m.height - 9 // title, stats, help and borders
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

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

// loadScores loads the scores of the selected game into the table.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil && len(m.games) > 0 {
		scores, err := m.store.TopScores(m.games[m.gameCursor].ID, maxScores)
		if err != nil {
			m.err = err
		}
		m.scores = scores
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.Difficulty,
			fmt.Sprintf("%016x", s.Seed),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// SelectedGame returns the ID of the game being shown.
func (m ScoreboardModel) SelectedGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// Chosen returns the score picked to be played again, if any.
func (m ScoreboardModel) Chosen() (storage.ScoreEntry, bool) {
	if m.chosen == nil {
		return storage.ScoreEntry{}, false
	}
	return *m.chosen, true
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			if i := m.table.Cursor(); i >= 0 && i < len(m.scores) {
				entry := m.scores[i]
				m.chosen = &entry
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadScores()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
				m.loadScores()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadScores()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.statsLine())
	b.WriteString("\n\n")

	content := boxStyle.Render(m.renderTableContent())

	if m.showSidebar() {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderGameList())
		content = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", content)
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	if m.err != nil {
		return helpStyle.Render("error: " + m.err.Error())
	}
	s := m.stats[m.SelectedGame()]
	if s == nil {
		return helpStyle.Render("not played yet")
	}
	return helpStyle.Render(fmt.Sprintf("%d games  best %d  average %.1f  last %s",
		s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("Jan 02 15:04")))
}

func (m ScoreboardModel) renderGameList() string {
	var sb strings.Builder
	sb.WriteString("Games\n")
	for i, g := range m.games {
		if i == m.gameCursor {
			sb.WriteString(cursorStyle.Render("> " + g.Title))
		} else {
			sb.WriteString("  " + g.Title)
		}
		if i < len(m.games)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		return helpStyle.Italic(true).Padding(1, 2).Render("No scores recorded yet.")
	}
	return m.table.View()
}

// RunScoreboard shows the scoreboard until the user quits or picks a score.
// ok reports whether a score was picked.
func RunScoreboard(store *storage.Store) (entry storage.ScoreEntry, ok bool, err error) {
	width, height := TerminalSize()
	final, err := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return entry, false, err
	}
	entry, ok = final.(ScoreboardModel).Chosen()
	return entry, ok, nil
}
