package pauli

import (
	"sort"
	"strconv"
	"strings"
)

// Stabilizer is one stabilizer generator: a sparse assignment of
// non-identity Pauli operators to qubit indices. The zero value is the
// trivial (identity) stabilizer.
type Stabilizer struct {
	ops map[int]Pauli
}

// New builds a stabilizer from a qubit-to-operator map. Identity entries
// are dropped.
func New(ops map[int]Pauli) *Stabilizer {
	s := &Stabilizer{ops: make(map[int]Pauli, len(ops))}
	for q, op := range ops {
		if op != I {
			s.ops[q] = op
		}
	}
	return s
}

// NewUniform builds a stabilizer applying op to every listed qubit.
func NewUniform(op Pauli, qubits ...int) *Stabilizer {
	ops := make(map[int]Pauli, len(qubits))
	for _, q := range qubits {
		ops[q] = op
	}
	return New(ops)
}

// Op returns the operator acting on qubit q, identity if none.
func (s *Stabilizer) Op(q int) Pauli {
	if op, ok := s.ops[q]; ok {
		return op
	}
	return I
}

// Qubits returns the support of the stabilizer in ascending order.
func (s *Stabilizer) Qubits() []int {
	qs := make([]int, 0, len(s.ops))
	for q := range s.ops {
		qs = append(qs, q)
	}
	sort.Ints(qs)
	return qs
}

// Weight is the number of qubits acted on non-trivially.
func (s *Stabilizer) Weight() int { return len(s.ops) }

// IsTrivial reports whether the stabilizer is the identity.
func (s *Stabilizer) IsTrivial() bool { return len(s.ops) == 0 }

// LeadOp is the operator on the lowest-indexed support qubit, identity
// for the trivial stabilizer. It stands in for "the type" of a uniform
// generator when pairing candidates for merging.
func (s *Stabilizer) LeadOp() Pauli {
	lead, op := -1, I
	for q, o := range s.ops {
		if lead < 0 || q < lead {
			lead, op = q, o
		}
	}
	return op
}

// CommutesWith reports whether the stabilizer commutes with a joint
// measurement of basis on the given qubits. The two commute iff an even
// number of the measured qubits carry a non-identity operator different
// from basis.
func (s *Stabilizer) CommutesWith(qubits []int, basis Pauli) bool {
	anti := 0
	for _, q := range qubits {
		op := s.Op(q)
		if op != I && op != basis {
			anti++
		}
	}
	return anti%2 == 0
}

// Multiply returns the product of two stabilizers, phase ignored.
// Neither receiver is modified.
func (s *Stabilizer) Multiply(other *Stabilizer) *Stabilizer {
	ops := make(map[int]Pauli, len(s.ops)+other.Weight())
	for q, op := range s.ops {
		ops[q] = op
	}
	for q, op := range other.ops {
		cur, ok := ops[q]
		if !ok {
			ops[q] = op
			continue
		}
		if prod := Mul(cur, op); prod == I {
			delete(ops, q)
		} else {
			ops[q] = prod
		}
	}
	return &Stabilizer{ops: ops}
}

// SubsetOf reports whether every (qubit, operator) entry of s also
// appears in other.
func (s *Stabilizer) SubsetOf(other *Stabilizer) bool {
	if s.Weight() > other.Weight() {
		return false
	}
	for q, op := range s.ops {
		if other.Op(q) != op {
			return false
		}
	}
	return true
}

// Equal reports entry-wise equality.
func (s *Stabilizer) Equal(other *Stabilizer) bool {
	return s.Weight() == other.Weight() && s.SubsetOf(other)
}

// Key is the canonical textual form, operators in qubit order: "X1 X2".
// Equal stabilizers have equal keys.
func (s *Stabilizer) Key() string {
	var b strings.Builder
	for i, q := range s.Qubits() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.ops[q].String())
		b.WriteString(strconv.Itoa(q))
	}
	return b.String()
}

func (s *Stabilizer) String() string { return s.Key() }

// Uniform reports whether all support operators equal op.
func (s *Stabilizer) Uniform(op Pauli) bool {
	for _, o := range s.ops {
		if o != op {
			return false
		}
	}
	return len(s.ops) > 0
}
