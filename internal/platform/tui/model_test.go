package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/atomas/internal/core"
	"github.com/vovakirdan/atomas/internal/sim"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 52, ScreenH: 84, TickRate: 60, Seed: 7}
	return NewModel(sim.DefaultParams(), cfg, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return out, cmd
}

func TestModelLayout(t *testing.T) {
	m := newTestModel(t)

	if m.screen.Width() != 52 || m.screen.Height() != 82 {
		t.Errorf("screen = %dx%d, expected 52x82", m.screen.Width(), m.screen.Height())
	}
	if m.mapper.Field != core.NewRect(1, 1, 50, 80) {
		t.Errorf("field = %+v", m.mapper.Field)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 102, Height: 42})
	if m.mapper.Field != core.NewRect(1, 1, 100, 38) {
		t.Errorf("field after resize = %+v", m.mapper.Field)
	}
}

func TestModelMouseReleaseLaunches(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(100, 0)

	m, _ = update(t, m, tea.MouseMsg{X: 26, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, TickMsg(start))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	st := m.Simulation().Stats()
	if st.Launches != 1 || st.Spawns != 2 {
		t.Fatalf("Stats() = %+v, expected one launch and a refill", st)
	}

	// The launched ball moves up on the next tick.
	m, _ = update(t, m, TickMsg(start.Add(100*time.Millisecond)))
	var flying *sim.Entity
	for _, e := range m.Simulation().Entities() {
		if e.IsLaunched() {
			flying = &e
		}
	}
	if flying == nil {
		t.Fatal("no launched ball")
	}
	if flying.Position.Y <= 0 {
		t.Errorf("launched ball at %v, expected it above the origin", flying.Position)
	}
	if sp, ok := m.sink.Get(flying.ID); !ok || sp.Position != flying.Position {
		t.Errorf("sink sprite = %+v, %v; expected it at %v", sp, ok, flying.Position)
	}
}

func TestModelClickOutsideFieldIgnored(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, TickMsg(time.Unix(100, 0)))

	if st := m.Simulation().Stats(); st.Launches != 0 {
		t.Errorf("Launches = %d, expected 0 for a click on the border", st.Launches)
	}
}

func TestModelSpaceUsesLastPointer(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 50, Y: 41, Action: tea.MouseActionMotion})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg(time.Unix(100, 0)))
	m, _ = update(t, m, TickMsg(time.Unix(100, 0).Add(50*time.Millisecond)))

	for _, e := range m.Simulation().Entities() {
		if e.IsLaunched() {
			if e.Velocity.X <= 0 {
				t.Errorf("velocity = %v, expected it toward the right edge", e.Velocity)
			}
			return
		}
	}
	t.Fatal("space should launch toward the last pointer")
}

func TestModelPauseAndRestart(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Unix(100, 0)))
	if !m.stats.Paused {
		t.Fatal("expected paused stats")
	}
	if !strings.Contains(m.View(), pausedBanner) {
		t.Error("View() should show the pause banner")
	}

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg(time.Unix(101, 0)))

	st := m.Simulation().Stats()
	if st.Ticks != 0 || st.Spawns != 1 || st.Active != 1 {
		t.Errorf("Stats() after restart = %+v", st)
	}
	if m.config.Seed != 7 || m.Simulation().Params().Seed != 7 {
		t.Errorf("seed after restart = %d, expected the fixed seed 7", m.config.Seed)
	}
	if m.sink.Len() != 1 {
		t.Errorf("sink holds %d sprites after restart, expected 1", m.sink.Len())
	}
}

func TestModelPauseBannerInsideField(t *testing.T) {
	m := newTestModel(t)

	m.draw()
	if strings.Contains(m.screen.String(), pausedBanner) {
		t.Fatal("banner drawn while running")
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Unix(100, 0)))
	m.draw()

	// Field is (1,1) 50x80: the banner sits on row 1+80/4, columns 23..28.
	if row := screenRow(m.screen, 21); !strings.Contains(row, pausedBanner) {
		t.Fatalf("row 21 = %q, expected the pause banner", row)
	}
	if c := m.screen.GetCell(23, 21); c.Rune != 'P' || c.Ink != core.InkYellow {
		t.Errorf("banner start = %+v, expected yellow 'P'", c)
	}
	if strings.Contains(m.statusLine(), pausedBanner) {
		t.Error("status line should leave the pause banner to the field")
	}

	// Too narrow for the banner: nothing is written.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 6, Height: 12})
	m.draw()
	if strings.Contains(m.screen.String(), "P") {
		t.Errorf("banner drawn into a 4-column field:\n%s", m.screen.String())
	}
}

func TestModelViewAndQuit(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.ContainsRune(view, BallRune) {
		t.Error("View() should draw the idle ball")
	}
	if !strings.Contains(view, "launch") || !strings.Contains(view, "balls 1") {
		t.Errorf("View() missing status or help line:\n%s", view)
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
