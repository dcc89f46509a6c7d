package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/session"
)

// Model is the Bubble Tea model for running Flappy Dragon.
type Model struct {
	game          *dragon.Game
	console       *core.BufferConsole
	tracker       *session.Tracker
	logger        *log.Logger
	keys          KeyMap
	help          help.Model
	config        core.RuntimeConfig
	pending       core.Key  // First game key since the last tick
	lastTick      time.Time // Zero until the first tick
	width         int
	height        int
	quitting      bool
	screenshotDir string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *dragon.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	shotDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		shotDir = filepath.Join(home, ".flappy-dragon", "screenshots")
	}

	return Model{
		game:          game,
		console:       core.NewBufferConsole(cfg.ScreenW, cfg.ScreenH),
		tracker:       session.NewTracker(logger, cfg.Seed),
		logger:        logger,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		config:        cfg,
		screenshotDir: shotDir,
	}
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
// Only the first game key between two ticks reaches the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		m.tracker.ExitRequested(m.game.Mode())
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	if m.pending == core.KeyNone {
		m.pending = m.keys.MapKey(msg)
	}
	return m, nil
}

// handleTick runs one game tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := 0.0
	if !m.lastTick.IsZero() {
		elapsed = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	m.console.BeginFrame(elapsed, m.pending)
	m.pending = core.KeyNone

	m.game.Tick(m.console)
	m.tracker.Observe(m.game.Mode(), m.game.Score())

	if m.console.Quitting() {
		m.tracker.ExitRequested(m.game.Mode())
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the last rendered frame as plain text.
func (m *Model) saveScreenshot() error {
	if m.screenshotDir == "" {
		return fmt.Errorf("tui: no screenshot directory")
	}
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return fmt.Errorf("tui: cannot create %s: %w", m.screenshotDir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("dragon_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.console.Screen().String()), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// tooSmall reports whether the terminal cannot fit the play field.
// Unknown sizes are assumed to fit.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.config.ScreenW || m.height < m.config.ScreenH
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			m.config.ScreenW, m.config.ScreenH, m.width, m.height)
	}

	view := RenderScreen(m.console.Screen())
	if m.height == 0 || m.height > m.config.ScreenH {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// Run starts the Bubble Tea program for the given game.
func Run(game *dragon.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
