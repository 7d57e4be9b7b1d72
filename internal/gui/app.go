// Package gui is the mouse-driven lattice window. Clicking near an
// edge marks that qubit pair for measurement, enter commits the time
// step, and the stabilizer group is listed beside the grid.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/baconshor/internal/code"
	"github.com/san-kum/baconshor/internal/pauli"
	"github.com/san-kum/baconshor/internal/session"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(45, 45, 45, 255)

	ColX       = rl.NewColor(80, 160, 255, 255)
	ColZ       = rl.NewColor(255, 105, 97, 255)
	ColXDim    = rl.NewColor(80, 160, 255, 110)
	ColZDim    = rl.NewColor(255, 105, 97, 110)
	ColXFill   = rl.NewColor(80, 160, 255, 35)
	ColZFill   = rl.NewColor(255, 105, 97, 35)
	ColMixFill = rl.NewColor(200, 160, 255, 35)
)

const (
	winW = 1280
	winH = 720
)

type App struct {
	Tracker  *code.Tracker
	Store    *session.Store
	Selected []code.Edge
	Messages []string
	ShowStab bool
	Quit     bool
	Font     rl.Font

	// lattice to screen transform
	scale   float32
	originX float32
	originY float32
}

func initWindow() {
	rl.InitWindow(winW, winH, "baconshor")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp creates an App for the given lattice. store may be nil.
func NewApp(l *code.Lattice, store *session.Store) *App {
	a := &App{
		Tracker:  code.NewTracker(l),
		Store:    store,
		ShowStab: true,
		Font:     loadFont(),
	}
	a.fitTransform(l)
	return a
}

// Run opens the window and blocks until it is closed.
func Run(l *code.Lattice, store *session.Store) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(l, store)
	for !rl.WindowShouldClose() && !app.Quit {
		app.Update()
		app.Draw()
	}
}

// fitTransform sizes the lattice into the left portion of the window,
// leaving room for the stabilizer panel on the right.
func (a *App) fitTransform(l *code.Lattice) {
	availW := float32(winW) * 0.6
	availH := float32(winH) - 200
	sx := availW / float32(l.Cols)
	sy := availH / float32(l.Rows)
	a.scale = sx
	if sy < sx {
		a.scale = sy
	}
	a.originX = 120
	// origin is the bottom-left vertex; center the lattice vertically
	a.originY = 120 + (availH-float32(l.Rows)*a.scale)/2 + float32(l.Rows)*a.scale
}

// screenPos maps plot coordinates (x right, y up) to window pixels.
func (a *App) screenPos(x, y float64) rl.Vector2 {
	return rl.NewVector2(a.originX+float32(x)*a.scale, a.originY-float32(y)*a.scale)
}

// plotPos is the inverse of screenPos.
func (a *App) plotPos(v rl.Vector2) (float64, float64) {
	return float64((v.X - a.originX) / a.scale), float64((a.originY - v.Y) / a.scale)
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.Quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.ShowStab = !a.ShowStab
	}
	if rl.IsKeyPressed(rl.KeyU) {
		a.Selected = nil
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.save()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		res := a.Tracker.ApplyStep(a.Selected)
		a.Selected = nil
		a.Messages = res.Rejected
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		x, y := a.plotPos(rl.GetMousePosition())
		a.toggle(a.Tracker.Lattice().NearestEdge(x, y))
	}
}

func (a *App) toggle(e code.Edge) {
	for i, sel := range a.Selected {
		if sel == e {
			a.Selected = append(a.Selected[:i], a.Selected[i+1:]...)
			return
		}
	}
	a.Selected = append(a.Selected, e)
}

func (a *App) save() {
	if a.Store == nil {
		a.Messages = []string{"no session store configured"}
		return
	}
	if err := a.Store.Init(); err != nil {
		a.Messages = []string{err.Error()}
		return
	}
	id, err := a.Store.Save(a.Tracker)
	if err != nil {
		a.Messages = []string{err.Error()}
		return
	}
	a.Messages = []string{fmt.Sprintf("saved session %s", id)}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawCells()
	a.drawGridLines()
	a.drawMeasurements()
	a.drawQubits()
	a.DrawHUD()
	if a.ShowStab {
		a.drawStabilizers()
	}

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawGridLines() {
	l := a.Tracker.Lattice()
	for _, e := range l.Edges() {
		x1, y1, _ := l.PlotPosition(e.A)
		x2, y2, _ := l.PlotPosition(e.B)
		rl.DrawLineV(a.screenPos(x1, y1), a.screenPos(x2, y2), ColGrid)
	}
}

// drawCells shades each unit cell fully covered by a stabilizer, X in
// blue, Z in red, mixed support in violet.
func (a *App) drawCells() {
	l := a.Tracker.Lattice()
	for _, s := range a.Tracker.Stabilizers() {
		var fill rl.Color
		switch {
		case s.Uniform(pauli.X):
			fill = ColXFill
		case s.Uniform(pauli.Z):
			fill = ColZFill
		default:
			fill = ColMixFill
		}
		support := make(map[int]bool, s.Weight())
		for _, q := range s.Qubits() {
			support[q] = true
		}
		for row := 0; row < l.Rows; row++ {
			for col := 0; col < l.Cols; col++ {
				if support[l.QubitAt(row, col)] && support[l.QubitAt(row, col+1)] &&
					support[l.QubitAt(row+1, col)] && support[l.QubitAt(row+1, col+1)] {
					top := a.screenPos(float64(col), float64(l.Rows-row))
					rl.DrawRectangleV(top, rl.NewVector2(a.scale, a.scale), fill)
				}
			}
		}
	}
}

func (a *App) drawMeasurements() {
	snap := a.Tracker.Snapshot()
	for _, mm := range snap.Previous {
		a.drawEdge(mm.Edge, a.basisColor(mm.Basis, true), 3, true)
	}
	for _, mm := range snap.Current {
		a.drawEdge(mm.Edge, a.basisColor(mm.Basis, false), 5, false)
	}
	for _, e := range a.Selected {
		a.drawEdge(e, ColSelect, 5, false)
	}
}

func (a *App) basisColor(b pauli.Pauli, dim bool) rl.Color {
	if b == pauli.X {
		if dim {
			return ColXDim
		}
		return ColX
	}
	if dim {
		return ColZDim
	}
	return ColZ
}

func (a *App) drawEdge(e code.Edge, col rl.Color, thick float32, dashed bool) {
	l := a.Tracker.Lattice()
	x1, y1, _ := l.PlotPosition(e.A)
	x2, y2, _ := l.PlotPosition(e.B)
	p1 := a.screenPos(x1, y1)
	p2 := a.screenPos(x2, y2)
	if !dashed {
		rl.DrawLineEx(p1, p2, thick, col)
		return
	}
	// dashed segments for the previous round
	const n = 7
	for i := 0; i < n; i += 2 {
		t1 := float32(i) / n
		t2 := float32(i+1) / n
		s := rl.NewVector2(p1.X+(p2.X-p1.X)*t1, p1.Y+(p2.Y-p1.Y)*t1)
		f := rl.NewVector2(p1.X+(p2.X-p1.X)*t2, p1.Y+(p2.Y-p1.Y)*t2)
		rl.DrawLineEx(s, f, thick, col)
	}
}

func (a *App) drawQubits() {
	l := a.Tracker.Lattice()
	for q := 1; q <= l.NumQubits(); q++ {
		x, y, _ := l.PlotPosition(q)
		p := a.screenPos(x, y)
		rl.DrawCircleV(p, 7, ColAccent)
		rl.DrawCircleV(p, 5, ColBg)
		a.drawText(fmt.Sprintf("%d", q), int(p.X)+10, int(p.Y)-22, 16, ColText)
	}
}

func (a *App) DrawHUD() {
	a.drawText("baconshor", 30, 30, 24, ColSelect)
	l := a.Tracker.Lattice()
	a.drawText(fmt.Sprintf(":: %dx%d lattice  step %d", l.Rows, l.Cols, a.Tracker.Step()), 180, 34, 16, ColText)
	a.drawText(fmt.Sprintf("selected %d", len(a.Selected)), 1120, 30, 16, ColText)

	y := 620
	for _, msg := range a.Messages {
		a.drawText(msg, 30, y, 14, ColZ)
		y += 20
	}

	a.drawText("CLICK: MARK PAIR  ENTER: MEASURE  U: CLEAR  G: PANEL  S: SAVE  Q: QUIT", 560, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)
}

func (a *App) drawStabilizers() {
	x := 900
	a.drawText("STABILIZERS", x, 90, 16, ColAccent)
	stabs := a.Tracker.Stabilizers()
	if len(stabs) == 0 {
		a.drawText("(none)", x, 120, 14, ColTextDim)
		return
	}
	y := 120
	for _, s := range stabs {
		col := ColText
		switch {
		case s.Uniform(pauli.X):
			col = ColX
		case s.Uniform(pauli.Z):
			col = ColZ
		}
		a.drawText(s.String(), x, y, 14, col)
		y += 20
		if y > 600 {
			a.drawText("...", x, y, 14, ColTextDim)
			break
		}
	}
}
