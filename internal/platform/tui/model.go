package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-survival/internal/core"
	"github.com/vovakirdan/space-survival/internal/storage"
)

// Game is the simulation the host drives.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Tick(now core.Millis, in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// flashDuration is how long an effect message stays on screen.
const flashDuration core.Millis = 700

// flashMessages are the effect lines shown under the game.
var flashMessages = map[core.Effect]struct {
	text  string
	color core.Color
}{
	"pickup":  {"+AMMO", core.ColorBrightCyan},
	"death":   {"SHIP DESTROYED", core.ColorBrightRed},
	"restart": {"GET READY", core.ColorBrightYellow},
}

// Model is the Bubble Tea model running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	now        core.Millis // Simulated clock, frozen while paused
	flash      string
	flashColor core.Color
	flashUntil core.Millis
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the simulated clock by one frame and steps the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.gameState.Paused {
		m.now += m.config.FrameDuration()
	}

	result := m.game.Tick(m.now, m.inputFrame)
	m.gameState = result.State
	for _, e := range result.Effects {
		if f, ok := flashMessages[e]; ok {
			m.flash, m.flashColor = f.text, f.color
			m.flashUntil = m.now + flashDuration
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// Now returns the simulated clock.
func (m Model) Now() core.Millis {
	return m.now
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := storage.ExpandHome(filepath.Join("~", ".survival", "screenshots"))
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.flash != "" && m.now < m.flashUntil {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.flash, m.flashColor)
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
