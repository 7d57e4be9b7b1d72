// Package tui is the interactive terminal session: a Bubble Tea state
// machine with a setup view for lattice size and preset choice, and a
// grid view where the cursor walks lattice edges, space marks a pair
// for measurement, and enter commits the time step.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/baconshor/internal/code"
	"github.com/san-kum/baconshor/internal/config"
	"github.com/san-kum/baconshor/internal/pauli"
	"github.com/san-kum/baconshor/internal/render"
	"github.com/san-kum/baconshor/internal/session"
)

type state int

const (
	stateSetup state = iota
	stateGrid
)

type setupParam struct {
	name string
	min  int
	max  int
}

var setupParams = []setupParam{
	{"rows", 1, 8},
	{"cols", 1, 8},
}

// preset cycle in the setup view; empty means start from scratch.
var presetChoices = append([]string{"none"}, config.ListPresets()...)

type model struct {
	state   state
	palette render.Palette
	store   *session.Store

	// setup
	params      map[string]int
	paramCursor int
	presetIdx   int

	// grid session
	tracker  *code.Tracker
	edges    []code.Edge
	cursor   int
	selected []code.Edge
	showStab bool
	messages []string

	width  int
	height int
}

// NewModel builds the interactive app. store may be nil to disable the
// save key.
func NewModel(store *session.Store, palette render.Palette) model {
	return model{
		state:    stateSetup,
		palette:  palette,
		store:    store,
		params:   map[string]int{"rows": config.DefaultRows, "cols": config.DefaultCols},
		showStab: true,
		width:    80,
		height:   24,
	}
}

// Run starts the interactive session using the default dark palette.
func Run(store *session.Store) error {
	p := tea.NewProgram(NewModel(store, render.DarkPalette()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case stateSetup:
			return m.setupKey(msg)
		case stateGrid:
			return m.gridKey(msg)
		}
	}
	return m, nil
}

func (m model) setupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(setupParams) {
			m.paramCursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter", "s", " ":
		return m.startSession()
	}
	return m, nil
}

func (m *model) adjust(delta int) {
	if m.paramCursor < len(setupParams) {
		p := setupParams[m.paramCursor]
		v := m.params[p.name] + delta
		if v < p.min {
			v = p.min
		}
		if v > p.max {
			v = p.max
		}
		m.params[p.name] = v
		return
	}
	m.presetIdx = (m.presetIdx + delta + len(presetChoices)) % len(presetChoices)
}

func (m model) startSession() (tea.Model, tea.Cmd) {
	l, err := code.NewLattice(m.params["rows"], m.params["cols"])
	if err != nil {
		m.messages = []string{err.Error()}
		return m, nil
	}
	m.tracker = code.NewTracker(l)
	m.edges = l.Edges()
	m.cursor = 0
	m.selected = nil
	m.messages = nil

	if name := presetChoices[m.presetIdx]; name != "none" {
		results := m.tracker.Replay(config.GetPreset(name, l))
		m.messages = append(m.messages, fmt.Sprintf("applied preset %s (%d steps)", name, len(results)))
	}

	m.state = stateGrid
	return m, tea.ClearScreen
}

func (m model) gridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateSetup
		return m, tea.ClearScreen
	case "left", "h":
		m.cursor = m.moveCursor(-1, 0)
	case "right", "l":
		m.cursor = m.moveCursor(1, 0)
	case "up", "k":
		m.cursor = m.moveCursor(0, 1)
	case "down", "j":
		m.cursor = m.moveCursor(0, -1)
	case " ":
		m.toggleSelected()
	case "u":
		m.selected = nil
	case "g":
		m.showStab = !m.showStab
	case "enter", "m":
		res := m.tracker.ApplyStep(m.selected)
		m.selected = nil
		m.messages = res.Rejected
	case "s":
		m.saveSession()
	}
	return m, nil
}

func (m *model) toggleSelected() {
	e := m.edges[m.cursor]
	for i, sel := range m.selected {
		if sel == e {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			return
		}
	}
	m.selected = append(m.selected, e)
}

// moveCursor steps to the nearest edge whose midpoint lies in the
// requested half-plane, in plot coordinates.
func (m *model) moveCursor(dx, dy float64) int {
	l := m.tracker.Lattice()
	cx, cy := edgeMidpoint(l, m.edges[m.cursor])

	best, bestDist := m.cursor, 0.0
	found := false
	for i, e := range m.edges {
		if i == m.cursor {
			continue
		}
		x, y := edgeMidpoint(l, e)
		if dx != 0 && (x-cx)*dx < 1e-9 {
			continue
		}
		if dy != 0 && (y-cy)*dy < 1e-9 {
			continue
		}
		d := (x-cx)*(x-cx) + (y-cy)*(y-cy)
		if !found || d < bestDist {
			best, bestDist, found = i, d, true
		}
	}
	return best
}

func edgeMidpoint(l *code.Lattice, e code.Edge) (float64, float64) {
	x1, y1, _ := l.PlotPosition(e.A)
	x2, y2, _ := l.PlotPosition(e.B)
	return (x1 + x2) / 2, (y1 + y2) / 2
}

func (m *model) saveSession() {
	if m.store == nil {
		m.messages = []string{"no session store configured"}
		return
	}
	if err := m.store.Init(); err != nil {
		m.messages = []string{err.Error()}
		return
	}
	id, err := m.store.Save(m.tracker)
	if err != nil {
		m.messages = []string{err.Error()}
		return
	}
	m.messages = []string{fmt.Sprintf("saved session %s", id)}
}

func (m model) View() string {
	switch m.state {
	case stateSetup:
		return m.viewSetup()
	case stateGrid:
		return m.viewGrid()
	}
	return ""
}

func (m model) viewSetup() string {
	p := m.palette
	var b strings.Builder

	b.WriteString("\n  " + p.Header.Render("bacon-shor lattice") + "\n\n")

	for i, sp := range setupParams {
		line := fmt.Sprintf("%-8s %2d", sp.name, m.params[sp.name])
		if i == m.paramCursor {
			b.WriteString("  " + p.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("    " + p.Label.Render(line) + "\n")
		}
	}

	presetLine := fmt.Sprintf("%-8s %s", "preset", presetChoices[m.presetIdx])
	if m.paramCursor == len(setupParams) {
		b.WriteString("  " + p.Selected.Render("▸ "+presetLine) + "\n")
	} else {
		b.WriteString("    " + p.Label.Render(presetLine) + "\n")
	}

	for _, msg := range m.messages {
		b.WriteString("\n  " + p.Error.Render(msg))
	}

	b.WriteString("\n  " + p.Help.Render("↑↓ select  ←→ adjust  enter start  q quit") + "\n")
	return b.String()
}

func (m model) viewGrid() string {
	p := m.palette
	cursor := m.edges[m.cursor]

	scene := render.Scene{
		Lattice:     m.tracker.Lattice(),
		Step:        m.tracker.Step(),
		Selected:    m.selected,
		Cursor:      &cursor,
		Stabilizers: m.tracker.Stabilizers(),
	}
	snap := m.tracker.Snapshot()
	scene.Current = snap.Current
	scene.Previous = snap.Previous

	header := fmt.Sprintf("time step %d", m.tracker.Step())
	basis := "ZZ"
	if b, err := m.tracker.Lattice().MeasurementBasis(cursor); err == nil && b == pauli.X {
		basis = "XX"
	}
	status := fmt.Sprintf("edge %s (%s)  selected %d", cursor, basis, len(m.selected))

	grid := render.Grid(scene, p)

	body := grid
	if m.showStab {
		panel := p.Header.Render("stabilizers") + "\n" +
			render.Stabilizers(m.tracker.Stabilizers(), p)
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			grid,
			lipgloss.NewStyle().MarginLeft(4).Render(panel),
		)
	}

	var b strings.Builder
	b.WriteString("\n  " + p.Header.Render(header) + "  " + p.Label.Render(status) + "\n\n")
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}

	for _, msg := range m.messages {
		b.WriteString("\n  " + p.Error.Render(msg))
	}
	if len(m.messages) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n  " + p.Help.Render("←↑↓→ move  space mark  enter measure  u clear  g panel  s save  esc setup  q quit") + "\n")
	return b.String()
}
