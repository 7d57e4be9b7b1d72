// Package export renders a tracker snapshot to SVG or PNG for use
// outside the terminal. Drawing goes through gonum/plot's vg canvas
// so both formats share one code path.
package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/san-kum/baconshor/internal/code"
	"github.com/san-kum/baconshor/internal/pauli"
)

const (
	unit   = vg.Length(72) // spacing between neighboring qubits
	margin = vg.Length(48)
)

var (
	colGrid  = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	colQubit = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colX     = color.RGBA{R: 60, G: 130, B: 240, A: 255}
	colZ     = color.RGBA{R: 230, G: 80, B: 70, A: 255}
	colXFill = color.RGBA{R: 60, G: 130, B: 240, A: 45}
	colZFill = color.RGBA{R: 230, G: 80, B: 70, A: 45}
	colMix   = color.RGBA{R: 170, G: 110, B: 230, A: 45}
)

func canvasSize(l *code.Lattice) (w, h vg.Length) {
	return vg.Length(l.Cols)*unit + 2*margin, vg.Length(l.Rows)*unit + 2*margin
}

// WriteSVG renders the snapshot as an SVG document.
func WriteSVG(w io.Writer, snap code.Snapshot) error {
	cw, ch := canvasSize(snap.Lattice)
	c := vgsvg.New(cw, ch)
	if err := drawScene(draw.New(c), snap); err != nil {
		return err
	}
	_, err := c.WriteTo(w)
	return err
}

// WritePNG renders the snapshot as a PNG image.
func WritePNG(w io.Writer, snap code.Snapshot) error {
	cw, ch := canvasSize(snap.Lattice)
	c := vgimg.PngCanvas{Canvas: vgimg.New(cw, ch)}
	if err := drawScene(draw.New(c), snap); err != nil {
		return err
	}
	_, err := c.WriteTo(w)
	return err
}

func point(l *code.Lattice, q int) vg.Point {
	x, y, _ := l.PlotPosition(q)
	return vg.Point{X: margin + vg.Length(x)*unit, Y: margin + vg.Length(y)*unit}
}

func drawScene(c draw.Canvas, snap code.Snapshot) error {
	l := snap.Lattice

	drawCells(c, l, snap.Stabilizers)

	grid := draw.LineStyle{Color: colGrid, Width: vg.Points(1)}
	for _, e := range l.Edges() {
		a, b := point(l, e.A), point(l, e.B)
		c.StrokeLine2(grid, a.X, a.Y, b.X, b.Y)
	}

	for _, m := range snap.Previous {
		sty := draw.LineStyle{
			Color:  basisColor(m.Basis),
			Width:  vg.Points(2),
			Dashes: []vg.Length{vg.Points(5), vg.Points(4)},
		}
		a, b := point(l, m.Edge.A), point(l, m.Edge.B)
		c.StrokeLine2(sty, a.X, a.Y, b.X, b.Y)
	}
	for _, m := range snap.Current {
		sty := draw.LineStyle{Color: basisColor(m.Basis), Width: vg.Points(4)}
		a, b := point(l, m.Edge.A), point(l, m.Edge.B)
		c.StrokeLine2(sty, a.X, a.Y, b.X, b.Y)
	}

	font, err := vg.MakeFont("Helvetica", vg.Points(11))
	if err != nil {
		return fmt.Errorf("load label font: %w", err)
	}
	label := draw.TextStyle{
		Color:  colQubit,
		Font:   font,
		XAlign: draw.XLeft,
		YAlign: draw.YBottom,
	}

	for q := 1; q <= l.NumQubits(); q++ {
		p := point(l, q)
		fillCircle(c, p, vg.Points(4), colQubit)
		c.FillText(label, vg.Point{X: p.X + vg.Points(6), Y: p.Y + vg.Points(6)}, fmt.Sprintf("%d", q))
	}

	title := draw.TextStyle{Color: colQubit, Font: font, XAlign: draw.XLeft, YAlign: draw.YTop}
	c.FillText(title, vg.Point{X: vg.Points(8), Y: canvasHeight(l) - vg.Points(8)},
		fmt.Sprintf("step %d", snap.Step))
	return nil
}

func canvasHeight(l *code.Lattice) vg.Length {
	_, h := canvasSize(l)
	return h
}

// drawCells shades each unit cell whose four corners all sit in a
// stabilizer's support.
func drawCells(c draw.Canvas, l *code.Lattice, stabs []*pauli.Stabilizer) {
	for _, s := range stabs {
		var fill color.Color
		switch {
		case s.Uniform(pauli.X):
			fill = colXFill
		case s.Uniform(pauli.Z):
			fill = colZFill
		default:
			fill = colMix
		}
		support := make(map[int]bool, s.Weight())
		for _, q := range s.Qubits() {
			support[q] = true
		}
		for row := 0; row < l.Rows; row++ {
			for col := 0; col < l.Cols; col++ {
				if !support[l.QubitAt(row, col)] || !support[l.QubitAt(row, col+1)] ||
					!support[l.QubitAt(row+1, col)] || !support[l.QubitAt(row+1, col+1)] {
					continue
				}
				p := point(l, l.QubitAt(row+1, col)) // bottom-left corner
				c.FillPolygon(fill, []vg.Point{
					{X: p.X, Y: p.Y},
					{X: p.X + unit, Y: p.Y},
					{X: p.X + unit, Y: p.Y + unit},
					{X: p.X, Y: p.Y + unit},
				})
			}
		}
	}
}

func basisColor(b pauli.Pauli) color.Color {
	if b == pauli.X {
		return colX
	}
	return colZ
}

func fillCircle(c draw.Canvas, center vg.Point, r vg.Length, clr color.Color) {
	c.SetColor(clr)
	var p vg.Path
	p.Move(vg.Point{X: center.X + r, Y: center.Y})
	p.Arc(center, r, 0, 2*math.Pi)
	p.Close()
	c.Fill(p)
}
