package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/atomas/internal/core"
	"github.com/vovakirdan/atomas/internal/sim"
)

// chromeRows is the number of rows below the playfield box (status + help).
const chromeRows = 2

// pausedBanner is drawn inside the playfield while the simulation is paused.
const pausedBanner = "PAUSED"

// Model is the Bubble Tea model running the simulation in a terminal.
type Model struct {
	sim        *sim.Simulation
	sink       *Sink
	screen     *core.Screen
	renderer   *Renderer
	clock      *core.FrameClock
	logger     *log.Logger
	config     core.RuntimeConfig
	fixedSeed  bool
	mapper     PointerMapper
	keys       KeyMap
	help       help.Model
	theme      Theme
	inputFrame core.InputFrame
	pointer    core.Pointer // Last known pointer, used by keyboard launches
	stats      sim.Stats
	notice     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given simulation parameters.
// A nil logger discards all output.
func NewModel(params sim.Params, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fixedSeed := cfg.Seed != 0
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	params.Seed = cfg.Seed

	sink := NewSink(params.Playfield)
	s := sim.New(params, sink, sim.WithLogger(logger))

	h := help.New()
	h.ShowAll = false

	m := Model{
		sim:        s,
		sink:       sink,
		screen:     core.NewScreen(0, 0),
		renderer:   NewRenderer(),
		clock:      &core.FrameClock{},
		logger:     logger,
		config:     cfg,
		fixedSeed:  fixedSeed,
		keys:       DefaultKeyMap(),
		help:       h,
		theme:      DefaultTheme(),
		inputFrame: core.NewInputFrame(),
		stats:      s.Stats(),
	}
	m.layout(cfg.ScreenW, cfg.ScreenH)
	return m
}

// layout sizes the screen buffer and the playfield area for a terminal of
// width x height cells.
func (m *Model) layout(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.screen.Resize(width, height-chromeRows)
	m.mapper = PointerMapper{
		Field:     m.screen.Bounds().Inset(1),
		Playfield: m.sim.Params().Playfield,
	}
	m.help.Width = width
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLaunch:
		m.inputFrame.Launch(m.pointer)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse tracks the pointer and launches on the primary button release.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := m.mapper.Pointer(msg.X, msg.Y)
	if p.Available {
		m.pointer = p
	}
	if IsLaunchRelease(msg) {
		m.inputFrame.Launch(p)
	}
	return m, nil
}

// handleTick advances the simulation by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)

	if m.inputFrame.Has(core.ActionRestart) {
		m.restart()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	res := m.sim.Step(dt, m.inputFrame)
	m.stats = res.Stats

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// restart starts over. A seed given on the command line is reused so the
// color sequence repeats; otherwise a new one is drawn.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.sim.Reset(m.config.Seed)
	m.clock.Reset()
	m.stats = m.sim.Stats()
	m.notice = ""
	m.logger.Info("restarted", "seed", m.config.Seed)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".atomas", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("atomas_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.notice = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the playfield into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	m.screen.DrawBox(m.screen.Bounds(), core.InkGray)
	m.sink.Draw(m.screen, m.mapper)
	if m.stats.Paused {
		m.drawBanner(pausedBanner, core.InkYellow)
	}
}

// drawBanner writes text centered horizontally in the upper quarter of the
// field, clear of the idle ball. Nothing is drawn if the field is too narrow.
func (m *Model) drawBanner(text string, ink core.Ink) {
	field := m.mapper.Field
	n := len([]rune(text))
	if field.W < n || field.H < 1 {
		return
	}
	m.screen.DrawText(field.X+(field.W-n)/2, field.Y+field.H/4, text, ink)
}

// statusLine describes the simulation counters.
func (m Model) statusLine() string {
	st := m.stats
	line := fmt.Sprintf(" balls %d  launched %d  retired %d  seed %d", st.Active, st.Launches, st.Retirements, m.config.Seed)
	if m.notice != "" {
		return m.theme.Status.Render(line) + "  " + m.theme.Notice.Render(m.notice)
	}
	return m.theme.Status.Render(line)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	var b strings.Builder
	b.WriteString(m.renderer.Render(m.screen))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(" " + m.help.View(m.keys)))
	return b.String()
}

// Simulation returns the simulation driven by the model.
func (m Model) Simulation() *sim.Simulation {
	return m.sim
}

// Run starts the Bubble Tea program for the given parameters.
func Run(params sim.Params, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(params, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Track the pointer between clicks
	)

	_, err := p.Run()
	return err
}
