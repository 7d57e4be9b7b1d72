package code

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/baconshor/internal/pauli"
)

// Edge is a normalized qubit pair: A < B always.
type Edge struct {
	A, B int
}

func NewEdge(q1, q2 int) Edge {
	if q1 > q2 {
		q1, q2 = q2, q1
	}
	return Edge{A: q1, B: q2}
}

// ParseEdge reads the "q1-q2" form used in configs and schedules.
func ParseEdge(s string) (Edge, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Edge{}, fmt.Errorf("edge %q: want \"q1-q2\"", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Edge{}, fmt.Errorf("edge %q: %w", s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Edge{}, fmt.Errorf("edge %q: %w", s, err)
	}
	return NewEdge(a, b), nil
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.A, e.B)
}

// Measurement is a committed two-qubit joint measurement.
type Measurement struct {
	Edge  Edge
	Basis pauli.Pauli
	Step  int
}

// Stabilizer is the generator a measurement projects onto.
func (m Measurement) Stabilizer() *pauli.Stabilizer {
	return pauli.NewUniform(m.Basis, m.Edge.A, m.Edge.B)
}

// ValidateEdge checks that both qubits exist and are lattice neighbors.
func (l *Lattice) ValidateEdge(e Edge) error {
	r1, c1, ok1 := l.PositionOf(e.A)
	r2, c2, ok2 := l.PositionOf(e.B)
	if !ok1 || !ok2 {
		return fmt.Errorf("edge %s: qubit does not exist on the %dx%d lattice", e, l.Rows, l.Cols)
	}
	dr, dc := absInt(r1-r2), absInt(c1-c2)
	if !(dr == 1 && dc == 0 || dr == 0 && dc == 1) {
		return fmt.Errorf("edge %s: qubits are not adjacent", e)
	}
	return nil
}

// MeasurementBasis derives the basis from edge orientation: vertical
// neighbors are measured in XX, horizontal neighbors in ZZ.
func (l *Lattice) MeasurementBasis(e Edge) (pauli.Pauli, error) {
	if err := l.ValidateEdge(e); err != nil {
		return pauli.I, err
	}
	r1, _, _ := l.PositionOf(e.A)
	r2, _, _ := l.PositionOf(e.B)
	if r1 != r2 {
		return pauli.X, nil
	}
	return pauli.Z, nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
