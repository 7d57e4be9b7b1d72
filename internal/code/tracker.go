package code

import (
	"github.com/san-kum/baconshor/internal/pauli"
)

// Tracker maps a sequence of committed edge measurements to the set of
// active stabilizer generators. Each ApplyStep advances the session by
// one time step and reconciles the group with the new measurements.
type Tracker struct {
	lattice  *Lattice
	step     int
	group    *pauli.Group
	current  []Measurement
	previous []Measurement
	history  [][]Measurement
}

// StepResult reports the outcome of one committed time step.
type StepResult struct {
	Step        int
	Applied     []Measurement
	Rejected    []string
	Stabilizers []*pauli.Stabilizer
}

// Snapshot is the render-ready view of the tracker state.
type Snapshot struct {
	Lattice     *Lattice
	Step        int
	Current     []Measurement
	Previous    []Measurement
	Stabilizers []*pauli.Stabilizer
}

func NewTracker(l *Lattice) *Tracker {
	return &Tracker{
		lattice: l,
		group:   pauli.NewGroup(),
	}
}

func (t *Tracker) Lattice() *Lattice { return t.lattice }

// Step is the number of committed time steps so far.
func (t *Tracker) Step() int { return t.step }

// Stabilizers lists the active generators in canonical order.
func (t *Tracker) Stabilizers() []*pauli.Stabilizer { return t.group.List() }

// History returns the valid measurements of every committed step.
func (t *Tracker) History() [][]Measurement { return t.history }

func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		Lattice:     t.lattice,
		Step:        t.step,
		Current:     t.current,
		Previous:    t.previous,
		Stabilizers: t.group.List(),
	}
}

// ApplyStep commits one time step of edge measurements. Invalid edges
// are skipped and reported in the result; an empty selection still
// advances the step counter.
func (t *Tracker) ApplyStep(edges []Edge) StepResult {
	t.step++

	applied := make([]Measurement, 0, len(edges))
	var rejected []string
	for _, e := range edges {
		basis, err := t.lattice.MeasurementBasis(e)
		if err != nil {
			rejected = append(rejected, err.Error())
			continue
		}
		applied = append(applied, Measurement{Edge: e, Basis: basis, Step: t.step})
	}

	t.update(applied)

	t.previous = t.current
	t.current = applied
	t.history = append(t.history, applied)

	return StepResult{
		Step:        t.step,
		Applied:     applied,
		Rejected:    rejected,
		Stabilizers: t.group.List(),
	}
}

// Replay rebuilds tracker state from a stored per-step edge history.
func (t *Tracker) Replay(history [][]Edge) []StepResult {
	results := make([]StepResult, 0, len(history))
	for _, step := range history {
		results = append(results, t.ApplyStep(step))
	}
	return results
}

func (t *Tracker) update(measurements []Measurement) {
	stabs := make([]*pauli.Stabilizer, len(measurements))
	for i, m := range measurements {
		stabs[i] = m.Stabilizer()
	}

	if t.step == 1 {
		t.group = pauli.NewGroup(stabs...)
		return
	}

	for _, s := range stabs {
		t.group.Add(s)
	}
	t.reconcile(measurements)
	t.simplify()
}

// reconcile restores commutation with each new measurement: generators
// that anti-commute are first merged pairwise when their product stays
// gauge-local (same basis, support confined to two rows for X or two
// columns for Z), and whatever still anti-commutes afterwards is
// discarded from the group.
func (t *Tracker) reconcile(measurements []Measurement) {
	for _, m := range measurements {
		ms := m.Stabilizer()
		qubits := []int{m.Edge.A, m.Edge.B}

		var anti []*pauli.Stabilizer
		for _, s := range t.group.List() {
			if !s.CommutesWith(qubits, m.Basis) && !s.Equal(ms) {
				anti = append(anti, s)
			}
		}

		for changed := true; changed; {
			changed = false
		pairs:
			for i := 0; i < len(anti); i++ {
				s1 := anti[i]
				op := s1.LeadOp()
				for j := i + 1; j < len(anti); j++ {
					s2 := anti[j]
					if s2.LeadOp() != op || !t.mergeable(op, s1, s2) {
						continue
					}
					t.group.Remove(s1)
					t.group.Remove(s2)
					anti = removeStab(anti, s1)
					anti = removeStab(anti, s2)
					product := s1.Multiply(s2)
					if !product.IsTrivial() {
						t.group.Add(product)
						if !product.CommutesWith(qubits, m.Basis) {
							anti = append(anti, product)
						}
					}
					changed = true
					break pairs
				}
			}
		}

		for _, s := range anti {
			t.group.Remove(s)
		}
	}
}

// mergeable reports whether the combined support of two same-type
// generators stays within one gauge strip: two lattice columns for
// Z-type, two rows for X-type.
func (t *Tracker) mergeable(op pauli.Pauli, s1, s2 *pauli.Stabilizer) bool {
	switch op {
	case pauli.X:
		return t.spanSize(s1, s2, false) <= 2
	case pauli.Z:
		return t.spanSize(s1, s2, true) <= 2
	}
	return false
}

func (t *Tracker) spanSize(s1, s2 *pauli.Stabilizer, byColumn bool) int {
	span := make(map[int]struct{})
	for _, s := range []*pauli.Stabilizer{s1, s2} {
		for _, q := range s.Qubits() {
			row, col, ok := t.lattice.PositionOf(q)
			if !ok {
				continue
			}
			if byColumn {
				span[col] = struct{}{}
			} else {
				span[row] = struct{}{}
			}
		}
	}
	return len(span)
}

// simplify reduces the generator set: walking members by ascending
// weight, each one is divided by any already-kept generator contained
// in it, and trivial remainders are dropped.
func (t *Tracker) simplify() {
	members := t.group.List()
	// List is key-sorted; order by weight first, keys break ties.
	for i := 1; i < len(members); i++ {
		for j := i; j > 0 && members[j].Weight() < members[j-1].Weight(); j-- {
			members[j], members[j-1] = members[j-1], members[j]
		}
	}

	kept := pauli.NewGroup()
	for _, s := range members {
		for _, k := range kept.List() {
			if k.SubsetOf(s) {
				s = s.Multiply(k)
			}
		}
		if !s.IsTrivial() {
			kept.Add(s)
		}
	}
	t.group = kept
}

func removeStab(list []*pauli.Stabilizer, s *pauli.Stabilizer) []*pauli.Stabilizer {
	out := list[:0]
	for _, x := range list {
		if !x.Equal(s) {
			out = append(out, x)
		}
	}
	return out
}
