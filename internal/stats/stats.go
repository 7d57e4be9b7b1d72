// Package stats derives per-time-step series from a measurement
// history: how many generators are active, how heavy they are, and how
// the group splits between X-type, Z-type, and mixed members.
package stats

import (
	"github.com/san-kum/baconshor/internal/code"
	"github.com/san-kum/baconshor/internal/pauli"
)

// Series holds one value per committed time step.
type Series struct {
	Count      []float64
	MeanWeight []float64
	XCount     []float64
	ZCount     []float64
	Mixed      []float64
}

// Collect replays history on a fresh tracker and records the group
// statistics after every step.
func Collect(l *code.Lattice, history [][]code.Edge) *Series {
	tr := code.NewTracker(l)
	s := &Series{}
	for _, step := range history {
		res := tr.ApplyStep(step)
		s.observe(res.Stabilizers)
	}
	return s
}

// Steps is the number of observed time steps.
func (s *Series) Steps() int { return len(s.Count) }

func (s *Series) observe(stabs []*pauli.Stabilizer) {
	var x, z, mixed int
	totalWeight := 0
	for _, st := range stabs {
		totalWeight += st.Weight()
		switch {
		case st.Uniform(pauli.X):
			x++
		case st.Uniform(pauli.Z):
			z++
		default:
			mixed++
		}
	}

	mean := 0.0
	if len(stabs) > 0 {
		mean = float64(totalWeight) / float64(len(stabs))
	}

	s.Count = append(s.Count, float64(len(stabs)))
	s.MeanWeight = append(s.MeanWeight, mean)
	s.XCount = append(s.XCount, float64(x))
	s.ZCount = append(s.ZCount, float64(z))
	s.Mixed = append(s.Mixed, float64(mixed))
}
