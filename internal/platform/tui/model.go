package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappypac/internal/core"
	"github.com/vovakirdan/flappypac/internal/registry"
)

// WorldSizer is implemented by games drawing in their own world units.
// Games without it are drawn one unit per cell.
type WorldSizer interface {
	WorldSize() (w, h float64)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	canvas     *CellCanvas
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	start      time.Time // First tick
	last       time.Time // Previous tick
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	worldW, worldH := float64(cfg.ScreenW), float64(cfg.ScreenH)
	if ws, ok := game.(WorldSizer); ok {
		worldW, worldH = ws.WorldSize()
	}

	return Model{
		game:       game,
		screen:     screen,
		canvas:     NewCellCanvas(screen, worldW, worldH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame, m.gameState.TextInput) {
		m.logger.Info("quit", "score", m.gameState.Score, "phase", m.gameState.Phase)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize refits the canvas. The last row is kept for the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.canvas.Fit()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start = now
		m.last = now
	}

	m.inputFrame.Elapsed = now.Sub(m.start).Seconds()
	m.inputFrame.Delta = now.Sub(m.last).Seconds()
	if m.inputFrame.Delta <= 0 {
		m.inputFrame.Delta = 1 / float64(m.config.TickRate)
	}
	m.last = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Passed > 0 || result.Pickups > 0 {
		m.logger.Debug("scored", "passed", result.Passed, "pickups", result.Pickups, "score", result.State.Score)
	}
	if result.PhaseChanged() {
		m.logPhase(result)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logPhase(r core.StepResult) {
	st := r.State
	m.logger.Debug("phase changed", "from", r.PrevPhase, "to", st.Phase)

	switch st.Phase {
	case "dead":
		m.logger.Info("player died", "level", st.Level+1, "score", st.Score)
	case "cleared":
		m.logger.Info("level cleared", "level", st.Level+1, "score", st.Score)
	case "victory":
		m.logger.Info("victory", "score", st.Score)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.canvas)

	dir := filepath.Join(os.Getenv("HOME"), ".flappypac", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.canvas)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
