// Package render draws the lattice as styled terminal text: qubit
// vertices, measurement edges, and stabilizer cell shading. The same
// renderer backs the interactive TUI and the session replay commands.
package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/baconshor/internal/code"
	"github.com/san-kum/baconshor/internal/pauli"
)

// Cell geometry in characters. Vertices carry a 2-wide qubit label.
const (
	vertexW = 2
	cellW   = 5
	cellH   = 2
)

// Scene is everything one frame needs: the committed state plus any
// uncommitted interactive selection.
type Scene struct {
	Lattice     *code.Lattice
	Step        int
	Current     []code.Measurement
	Previous    []code.Measurement
	Selected    []code.Edge
	Cursor      *code.Edge
	Stabilizers []*pauli.Stabilizer
}

type class uint8

const (
	classEmpty class = iota
	classQubit
	classGrid
	classXEdge
	classZEdge
	classPrevX
	classPrevZ
	classSelected
	classCursor
	classCellX
	classCellZ
	classCellMixed
)

type cell struct {
	r rune
	c class
}

// Grid renders the scene. Edge precedence: cursor over pending
// selection over this step's measurements over last step's over bare
// grid lines.
func Grid(scene Scene, p Palette) string {
	l := scene.Lattice
	width := l.Cols*(vertexW+cellW) + vertexW
	height := l.Rows*(1+cellH) + 1

	buf := make([][]cell, height)
	for y := range buf {
		buf[y] = make([]cell, width)
		for x := range buf[y] {
			buf[y][x] = cell{r: ' ', c: classEmpty}
		}
	}

	shadeCells(scene, buf)
	drawEdges(scene, buf)
	drawVertices(scene, buf)

	return flush(buf, p)
}

func colX(j int) int { return j * (vertexW + cellW) }
func rowY(i int) int { return i * (1 + cellH) }

func shadeCells(scene Scene, buf [][]cell) {
	l := scene.Lattice
	for i := 0; i < l.Rows; i++ {
		for j := 0; j < l.Cols; j++ {
			cls := cellClass(scene, i, j)
			if cls == classEmpty {
				continue
			}
			for y := rowY(i) + 1; y < rowY(i+1); y++ {
				for x := colX(j) + vertexW; x < colX(j+1); x++ {
					buf[y][x] = cell{r: '░', c: cls}
				}
			}
		}
	}
}

// cellClass picks the shading for cell (i, j): the last stabilizer in
// canonical order whose support covers all four corner qubits, typed by
// its composition.
func cellClass(scene Scene, i, j int) class {
	l := scene.Lattice
	corners := []int{
		l.QubitAt(i, j), l.QubitAt(i, j+1),
		l.QubitAt(i+1, j), l.QubitAt(i+1, j+1),
	}

	cls := classEmpty
	for _, s := range scene.Stabilizers {
		covered := true
		for _, q := range corners {
			if s.Op(q) == pauli.I {
				covered = false
				break
			}
		}
		if !covered {
			continue
		}
		switch {
		case s.Uniform(pauli.X):
			cls = classCellX
		case s.Uniform(pauli.Z):
			cls = classCellZ
		default:
			cls = classCellMixed
		}
	}
	return cls
}

func drawEdges(scene Scene, buf [][]cell) {
	l := scene.Lattice

	current := measurementMap(scene.Current)
	previous := measurementMap(scene.Previous)
	selected := make(map[code.Edge]bool, len(scene.Selected))
	for _, e := range scene.Selected {
		selected[e] = true
	}

	for _, e := range l.Edges() {
		horizontal, i, j := edgeGeometry(l, e)

		cur, isCur := current[e]
		prev, isPrev := previous[e]

		cls, solid := classGrid, false
		switch {
		case scene.Cursor != nil && *scene.Cursor == e:
			cls, solid = classCursor, true
		case selected[e]:
			cls, solid = classSelected, true
		case isCur:
			solid = true
			if cur == pauli.X {
				cls = classXEdge
			} else {
				cls = classZEdge
			}
		case isPrev:
			if prev == pauli.X {
				cls = classPrevX
			} else {
				cls = classPrevZ
			}
		}

		if horizontal {
			r := edgeRune(cls, solid, '─', '╌', '·')
			y := rowY(i)
			for x := colX(j) + vertexW; x < colX(j+1); x++ {
				buf[y][x] = cell{r: r, c: cls}
			}
		} else {
			r := edgeRune(cls, solid, '│', '┆', '·')
			x := colX(j) + 1
			for y := rowY(i) + 1; y < rowY(i+1); y++ {
				buf[y][x] = cell{r: r, c: cls}
			}
		}
	}
}

func edgeRune(cls class, solid bool, solidR, dashedR, gridR rune) rune {
	switch {
	case solid:
		return solidR
	case cls == classPrevX || cls == classPrevZ:
		return dashedR
	default:
		return gridR
	}
}

// edgeGeometry classifies an edge and returns the vertex coordinates of
// its top-left endpoint.
func edgeGeometry(l *code.Lattice, e code.Edge) (horizontal bool, row, col int) {
	r1, c1, _ := l.PositionOf(e.A)
	r2, _, _ := l.PositionOf(e.B)
	return r1 == r2, r1, c1
}

func drawVertices(scene Scene, buf [][]cell) {
	l := scene.Lattice
	for i := 0; i <= l.Rows; i++ {
		for j := 0; j <= l.Cols; j++ {
			label := fmt.Sprintf("%2d", l.QubitAt(i, j))
			y, x := rowY(i), colX(j)
			for k, r := range label {
				buf[y][x+k] = cell{r: r, c: classQubit}
			}
		}
	}
}

// flush converts the cell buffer to a string, styling contiguous runs
// of the same class together.
func flush(buf [][]cell, p Palette) string {
	var b strings.Builder
	for _, line := range buf {
		x := 0
		for x < len(line) {
			cls := line[x].c
			var run strings.Builder
			for x < len(line) && line[x].c == cls {
				run.WriteRune(line[x].r)
				x++
			}
			b.WriteString(styleFor(cls, p).Render(run.String()))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func styleFor(cls class, p Palette) interface{ Render(...string) string } {
	switch cls {
	case classQubit:
		return p.Qubit
	case classGrid:
		return p.GridLine
	case classXEdge:
		return p.XEdge
	case classZEdge:
		return p.ZEdge
	case classPrevX:
		return p.PrevXEdge
	case classPrevZ:
		return p.PrevZEdge
	case classSelected:
		return p.Selected
	case classCursor:
		return p.Cursor
	case classCellX:
		return p.XCell
	case classCellZ:
		return p.ZCell
	case classCellMixed:
		return p.MixedCell
	default:
		return p.Value
	}
}

func measurementMap(ms []code.Measurement) map[code.Edge]pauli.Pauli {
	out := make(map[code.Edge]pauli.Pauli, len(ms))
	for _, m := range ms {
		out[m.Edge] = m.Basis
	}
	return out
}

// Stabilizers formats the generator list for the side panel, one line
// per generator, marker colored by composition.
func Stabilizers(stabs []*pauli.Stabilizer, p Palette) string {
	if len(stabs) == 0 {
		return p.Help.Render("(no active stabilizers)")
	}
	var b strings.Builder
	for _, s := range stabs {
		marker := p.MixedCell
		switch {
		case s.Uniform(pauli.X):
			marker = p.XEdge
		case s.Uniform(pauli.Z):
			marker = p.ZEdge
		}
		b.WriteString(marker.Render("▪ "))
		b.WriteString(p.Value.Render(s.Key()))
		b.WriteByte('\n')
	}
	return b.String()
}
