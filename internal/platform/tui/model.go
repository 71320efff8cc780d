package tui

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/scene"
	"github.com/vovakirdan/tui-bounce/internal/storage"
)

// steerHold is how many ticks one arrow key press keeps the paddle moving.
// Terminals report presses and repeats but never releases.
const steerHold = 6

const outcomeQuit = "quit"

// Options configures a game model.
type Options struct {
	Game       config.BounceConfig
	Runtime    core.RuntimeConfig
	Store      *storage.Store // Optional; runs are not recorded when nil
	Player     string
	Difficulty string
	Logger     *log.Logger // Optional; discards when nil
}

// Model is the Bubble Tea model for a single bounce game.
type Model struct {
	scene      *scene.Scene
	rng        *rand.Rand
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	runtime    core.RuntimeConfig
	player     string
	difficulty string

	keys       KeyMap
	help       help.Model
	input      core.InputFrame
	steer      int // Direction of the last arrow press
	steerTicks int // Ticks left before the paddle stops
	state      core.GameState
	quitting   bool
	saved      bool // Whether the current run has been recorded
}

// NewModel creates a game model. A zero seed is replaced with the clock.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if rt.Seed == 0 {
		rt.Seed = uint64(time.Now().UnixNano())
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	sc := scene.New(opts.Game)
	m := Model{
		scene:      sc,
		rng:        scene.NewRand(rt.Seed),
		store:      opts.Store,
		logger:     logger,
		runtime:    rt,
		player:     player,
		difficulty: opts.Difficulty,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		input:      core.NewInputFrame(),
		state:      sc.State(),
	}
	m.help.Width = rt.ScreenW
	m.screen = core.NewScreen(rt.ScreenW, rt.ScreenH-m.helpHeight())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resizeScreen()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.saveRun(outcomeQuit)
		return m, tea.Quit
	case core.ActionLeft:
		m.steer, m.steerTicks = -1, steerHold
	case core.ActionRight:
		m.steer, m.steerTicks = 1, steerHold
	case core.ActionRestart:
		if m.state.GameOver() {
			m.input.Set(action)
		}
	case core.ActionNone:
	default:
		m.input.Set(action)
	}

	return m, nil
}

// handleTick advances the scene by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionRestart) && m.state.GameOver() {
		m.runtime.Seed = uint64(time.Now().UnixNano())
		m.rng = scene.NewRand(m.runtime.Seed)
		m.saved = false
		m.steerTicks = 0
	}

	if m.steerTicks > 0 {
		m.steerTicks--
		if m.steer < 0 {
			m.input.Set(core.ActionLeft)
		} else {
			m.input.Set(core.ActionRight)
		}
	}

	res := m.scene.Step(m.input, m.rng)
	m.state = res.State
	if res.LifeLost {
		m.logger.Debug("life lost", "lives", m.state.Lives, "tick", m.state.Tick)
	}

	if m.state.GameOver() {
		m.saveRun(string(m.state.Status))
	}

	m.input.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// saveRun records the current run once. Runs without points are skipped.
func (m *Model) saveRun(outcome string) {
	if m.saved {
		return
	}
	m.saved = true
	if m.store == nil || m.state.Score <= 0 {
		return
	}

	id, err := m.store.SaveRun(storage.Run{
		Player:     m.player,
		Score:      m.state.Score,
		Seed:       m.runtime.Seed,
		Ticks:      m.state.Tick,
		Blocks:     m.scene.Stats().Destroyed,
		Difficulty: m.difficulty,
		Outcome:    outcome,
	})
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "player", m.player, "score", m.state.Score, "outcome", outcome)
}

func (m *Model) helpHeight() int {
	if m.help.ShowAll {
		return len(m.keys.FullHelp()[0])
	}
	return 1
}

func (m *Model) resizeScreen() {
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH-m.helpHeight())
}

// saveScreenshot saves the current screen to ~/.bounce/screenshots.
func (m *Model) saveScreenshot() {
	m.scene.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".bounce", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("bounce_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// State returns the game summary as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Seed returns the seed of the current run.
func (m Model) Seed() uint64 {
	return m.runtime.Seed
}

// View renders the playfield and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for one game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
