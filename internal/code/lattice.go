package code

import (
	"fmt"
	"math"
	"strings"
)

// Lattice is the Bacon-Shor qubit layout: Rows x Cols cells with data
// qubits on the (Rows+1) x (Cols+1) vertices, numbered 1..N row-major
// from the top-left corner.
type Lattice struct {
	Rows int
	Cols int
}

func NewLattice(rows, cols int) (*Lattice, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("lattice needs at least 1x1 cells, got %dx%d", rows, cols)
	}
	return &Lattice{Rows: rows, Cols: cols}, nil
}

// NumQubits is the number of vertices.
func (l *Lattice) NumQubits() int {
	return (l.Rows + 1) * (l.Cols + 1)
}

// QubitAt returns the 1-based qubit index at vertex (row, col).
func (l *Lattice) QubitAt(row, col int) int {
	return row*(l.Cols+1) + col + 1
}

// PositionOf returns the vertex coordinates of qubit q.
func (l *Lattice) PositionOf(q int) (row, col int, ok bool) {
	if q < 1 || q > l.NumQubits() {
		return 0, 0, false
	}
	q--
	return q / (l.Cols + 1), q % (l.Cols + 1), true
}

// Edges lists all nearest-neighbor pairs, horizontal then vertical,
// scanning row-major.
func (l *Lattice) Edges() []Edge {
	edges := make([]Edge, 0, l.Rows*(l.Cols+1)+l.Cols*(l.Rows+1))
	for i := 0; i <= l.Rows; i++ {
		for j := 0; j <= l.Cols; j++ {
			q := l.QubitAt(i, j)
			if j < l.Cols {
				edges = append(edges, NewEdge(q, l.QubitAt(i, j+1)))
			}
			if i < l.Rows {
				edges = append(edges, NewEdge(q, l.QubitAt(i+1, j)))
			}
		}
	}
	return edges
}

// PlotPosition maps qubit q into plot coordinates used by the renderers:
// x grows with the column, y grows upward so the first row sits on top.
func (l *Lattice) PlotPosition(q int) (x, y float64, ok bool) {
	row, col, ok := l.PositionOf(q)
	if !ok {
		return 0, 0, false
	}
	return float64(col), float64(l.Rows - row), true
}

// NearestEdge returns the edge whose midpoint is closest to (x, y) in
// plot coordinates. Used to resolve pointer clicks.
func (l *Lattice) NearestEdge(x, y float64) Edge {
	var best Edge
	bestDist := math.Inf(1)
	for _, e := range l.Edges() {
		x1, y1, _ := l.PlotPosition(e.A)
		x2, y2, _ := l.PlotPosition(e.B)
		d := math.Hypot((x1+x2)/2-x, (y1+y2)/2-y)
		if d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}

// String renders the qubit index grid, matching the session banner:
//
//	 1  2  3
//	 4  5  6
//	 7  8  9
func (l *Lattice) String() string {
	var b strings.Builder
	for i := 0; i <= l.Rows; i++ {
		for j := 0; j <= l.Cols; j++ {
			fmt.Fprintf(&b, "%2d ", l.QubitAt(i, j))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
