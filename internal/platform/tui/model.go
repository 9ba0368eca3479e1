package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/dispatch"
	"github.com/vovakirdan/led-arcade/internal/platform"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/scheduler"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	TickRate int
	DeadZone int

	// Context stops the session when cancelled. Defaults to Background.
	Context context.Context

	// Store receives a score whenever a game ends. Nil disables saving.
	Store *storage.Store

	// Difficulty labels saved scores.
	Difficulty string

	// Mirror also receives every frame, e.g. an LED strip.
	Mirror platform.Display

	// Record keeps every controller sample for a replay.
	Record bool

	Logger *log.Logger

	// Width and Height are the initial terminal size, if known.
	Width, Height int
}

// screen is the Display the scheduler draws into; View renders from it.
type screen struct {
	frame core.Frame
}

func (s *screen) Show(f *core.Frame) {
	s.frame = *f
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for one arcade session.
type Model struct {
	ctx      context.Context
	sched    *scheduler.Scheduler
	keyboard *Keyboard
	recorder *platform.Recorder
	screen   *screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	store    *storage.Store
	level    string
	log      *log.Logger

	width, height int
	scoreSaved    bool // whether the current game over has been saved
	quitting      bool
}

// NewModel creates a terminal session driving machine.
func NewModel(machine *dispatch.Dispatcher, opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	kb := NewKeyboard(keys)
	scr := &screen{}

	var controller platform.Controller = kb
	var recorder *platform.Recorder
	if opts.Record {
		recorder = platform.NewRecorder(kb)
		controller = recorder
	}

	var display platform.Display = scr
	if opts.Mirror != nil {
		display = platform.Displays{scr, opts.Mirror}
	}

	// Bubble Tea's tick messages pace the session, so the scheduler's own
	// timer is never used.
	sched := scheduler.New(machine, display, controller, nil, scheduler.Options{
		TickRate: opts.TickRate,
		DeadZone: opts.DeadZone,
		Logger:   opts.Logger,
	})

	m := Model{
		ctx:      opts.Context,
		sched:    sched,
		keyboard: kb,
		recorder: recorder,
		screen:   scr,
		renderer: NewRenderer(1),
		keys:     keys,
		help:     help.New(),
		store:    opts.Store,
		level:    opts.Difficulty,
		log:      opts.Logger,
		width:    opts.Width,
		height:   opts.Height,
	}
	m.fit()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.sched.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyboard.HandleKey(msg) {
		case KeyQuit:
			m.quitting = true
			return m, tea.Quit
		case KeyHelp:
			m.help.ShowAll = !m.help.ShowAll
			m.fit()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.fit()
		return m, nil

	case tea.BlurMsg:
		m.keyboard.Release()
		return m, nil

	case TickMsg:
		if err := m.sched.Tick(m.ctx); err != nil {
			m.quitting = true
			return m, tea.Quit
		}
		m.saveScore()
		return m, tickCmd(m.sched.Interval())
	}

	return m, nil
}

// fit resizes the LED grid to the terminal, leaving room for the footer.
func (m *Model) fit() {
	m.help.Width = m.width
	if m.width <= 0 || m.height <= 0 {
		return
	}
	footer := 1 + lipgloss.Height(m.help.View(m.keys))
	m.renderer.Fit(m.width, m.height, footer)
}

// saveScore stores the score once per game over.
func (m *Model) saveScore() {
	d := m.sched.Dispatcher()
	st := d.State()
	if d.Kind() == core.KindMenu || !st.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || st.Score == 0 {
		return
	}
	entry := storage.ScoreEntry{
		GameID:     d.Kind().String(),
		Score:      st.Score,
		Difficulty: m.level,
		Seed:       d.Seed(),
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.log.Warn("could not save score", "game", d.Kind(), "error", err)
		return
	}
	m.log.Info("score saved", "game", d.Kind(), "score", st.Score)
}

// View renders the LED grid with a status line and key help below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderer.Render(&m.screen.frame))
	b.WriteByte('\n')
	b.WriteString(m.status())
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) status() string {
	d := m.sched.Dispatcher()
	if d.Kind() == core.KindMenu {
		return statusStyle.Render("◀ " + title(d.Selected()) + " ▶")
	}

	st := d.State()
	line := statusStyle.Render(fmt.Sprintf("%s  %d", title(d.Kind()), st.Score))
	if st.GameOver {
		line += "  " + overStyle.Render("GAME OVER")
	}
	return line
}

func title(kind core.GameKind) string {
	if info, ok := registry.ByKind(kind); ok {
		return info.Title
	}
	return kind.String()
}

// Scheduler returns the scheduler driven by the model.
func (m Model) Scheduler() *scheduler.Scheduler {
	return m.sched
}

// Recorder returns the input recorder, or nil when recording is off.
func (m Model) Recorder() *platform.Recorder {
	return m.recorder
}

// Run runs a terminal session on the current terminal until the player quits
// and returns the final model.
func Run(machine *dispatch.Dispatcher, opts Options) (Model, error) {
	if opts.Width == 0 {
		opts.Width, opts.Height = TerminalSize()
	}
	model := NewModel(machine, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		return fm, err
	}
	return model, err
}
