package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/storage"
)

func newTestModel(store *storage.Store) Model {
	return NewModel(Options{
		Game:       config.DefaultBounceConfig(),
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		Store:      store,
		Player:     "alice",
		Difficulty: "normal",
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestNewModel(t *testing.T) {
	m := newTestModel(nil)

	if m.Seed() != 7 {
		t.Errorf("Seed() = %d, expected 7", m.Seed())
	}
	if m.State().Status != core.StatusServing {
		t.Errorf("Status = %v, expected %v", m.State().Status, core.StatusServing)
	}
	if m.screen.Width() != 80 || m.screen.Height() != 23 {
		t.Errorf("screen = %dx%d, expected 80x23", m.screen.Width(), m.screen.Height())
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
}

func TestNewModelRandomSeed(t *testing.T) {
	m := NewModel(Options{Game: config.DefaultBounceConfig()})
	if m.Seed() == 0 {
		t.Error("zero seed was not replaced")
	}
	if m.runtime.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", m.runtime.TickRate)
	}
}

func TestModelServe(t *testing.T) {
	m := newTestModel(nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := send(t, m, TickMsg{})

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.State().Status != core.StatusPlaying {
		t.Errorf("Status = %v, expected %v", m.State().Status, core.StatusPlaying)
	}
	if m.State().Balls != 1 {
		t.Errorf("Balls = %d, expected 1", m.State().Balls)
	}
}

func TestModelSteering(t *testing.T) {
	m := newTestModel(nil)
	start := m.scene.Paddle().Rect.X

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range steerHold + 3 {
		m, _ = send(t, m, TickMsg{})
	}

	speed := config.DefaultBounceConfig().Paddle.Speed
	want := start - steerHold*speed
	if got := m.scene.Paddle().Rect.X; got != want {
		t.Errorf("paddle X = %v, expected %v", got, want)
	}

	// The opposite key replaces the held direction.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, TickMsg{})
	if got := m.scene.Paddle().Rect.X; got != want+speed {
		t.Errorf("paddle X = %v, expected %v", got, want+speed)
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	m := newTestModel(nil)

	m, _ = send(t, m, runeKey('r'))
	if m.input.Has(core.ActionRestart) {
		t.Error("restart queued while the game is running")
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(nil)

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, TickMsg{})
	if !m.State().Paused() {
		t.Errorf("Status = %v, expected paused", m.State().Status)
	}
	tick := m.State().Tick

	m, _ = send(t, m, TickMsg{})
	if m.State().Tick != tick {
		t.Errorf("Tick = %d while paused, expected %d", m.State().Tick, tick)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(nil)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd() = %v, expected tea.QuitMsg", msg)
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}

	m, _ = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("help did not expand")
	}
	if m.screen.Height() != 27 {
		t.Errorf("screen height = %d with full help, expected 27", m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(nil)
	view := m.View()

	for _, want := range []string{"Score: 0", "Lives: 3", "serve"} {
		if !contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModelSaveRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	m := newTestModel(store)
	m.state = core.GameState{Status: core.StatusWon, Score: 50, Tick: 900}
	m.saveRun(string(core.StatusWon))
	m.saveRun(string(core.StatusWon))

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("AllRuns() returned %d runs, expected 1", len(runs))
	}

	r := runs[0]
	if r.Player != "alice" || r.Score != 50 || r.Seed != 7 || r.Ticks != 900 {
		t.Errorf("run = %+v, expected alice/50/seed 7/900 ticks", r)
	}
	if r.Outcome != "won" || r.Difficulty != "normal" {
		t.Errorf("run outcome/difficulty = %q/%q, expected won/normal", r.Outcome, r.Difficulty)
	}
}

func TestModelSkipsEmptyRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	m := newTestModel(store)
	m.state.Score = 0
	_, _ = send(t, m, runeKey('q'))

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("AllRuns() returned %d runs, expected 0", len(runs))
	}
}
