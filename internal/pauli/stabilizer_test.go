package pauli

import (
	"testing"
)

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want Pauli
	}{
		{I, I, I},
		{I, X, X},
		{Z, I, Z},
		{X, X, I},
		{Z, Z, I},
		{Y, Y, I},
		{X, Z, Y},
		{Z, X, Y},
		{X, Y, Z},
		{Y, X, Z},
		{Z, Y, X},
		{Y, Z, X},
	}

	for _, tt := range tests {
		if got := Mul(tt.a, tt.b); got != tt.want {
			t.Errorf("Mul(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, s := range []string{"I", "X", "Z", "Y"} {
		p, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if p.String() != s {
			t.Errorf("Parse(%q) = %s", s, p)
		}
	}
	if _, err := Parse("W"); err == nil {
		t.Error("expected error for unknown operator")
	}
}

func TestNew_DropsIdentity(t *testing.T) {
	s := New(map[int]Pauli{1: X, 2: I, 3: Z})
	if s.Weight() != 2 {
		t.Errorf("weight = %d, want 2", s.Weight())
	}
	if s.Op(2) != I {
		t.Errorf("Op(2) = %s, want I", s.Op(2))
	}
}

func TestCommutesWith(t *testing.T) {
	tests := []struct {
		name   string
		stab   *Stabilizer
		qubits []int
		basis  Pauli
		want   bool
	}{
		{"disjoint support", NewUniform(X, 1, 2), []int{5, 6}, Z, true},
		{"same basis", NewUniform(X, 1, 2), []int{1, 2}, X, true},
		{"one overlap crossing basis", NewUniform(Z, 2, 3), []int{1, 2}, X, false},
		{"two overlaps crossing basis", NewUniform(Z, 1, 2), []int{1, 2}, X, true},
		{"mixed stabilizer single clash", New(map[int]Pauli{1: X, 2: Z}), []int{2, 3}, X, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stab.CommutesWith(tt.qubits, tt.basis); got != tt.want {
				t.Errorf("CommutesWith(%v, %s) = %v, want %v", tt.qubits, tt.basis, got, tt.want)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	a := NewUniform(X, 1, 2)
	b := NewUniform(X, 2, 3)

	prod := a.Multiply(b)
	if got, want := prod.Key(), "X1 X3"; got != want {
		t.Errorf("product key = %q, want %q", got, want)
	}

	// Receivers untouched.
	if a.Key() != "X1 X2" || b.Key() != "X2 X3" {
		t.Errorf("Multiply mutated operands: %s, %s", a, b)
	}

	// Crossing bases produce Y.
	c := NewUniform(Z, 2, 3)
	mixed := a.Multiply(c)
	if got, want := mixed.Key(), "X1 Y2 Z3"; got != want {
		t.Errorf("mixed product key = %q, want %q", got, want)
	}

	// Self-product cancels completely.
	if !a.Multiply(a).IsTrivial() {
		t.Error("self-product should be trivial")
	}
}

func TestSubsetOf(t *testing.T) {
	small := NewUniform(X, 1, 2)
	big := NewUniform(X, 1, 2, 3, 4)
	other := New(map[int]Pauli{1: X, 2: Z})

	if !small.SubsetOf(big) {
		t.Error("X1 X2 should be a subset of X1 X2 X3 X4")
	}
	if big.SubsetOf(small) {
		t.Error("larger stabilizer cannot be a subset of a smaller one")
	}
	if other.SubsetOf(big) {
		t.Error("differing operator on shared qubit breaks subset")
	}
	if !small.SubsetOf(small) {
		t.Error("stabilizer should be a subset of itself")
	}
}

func TestLeadOp(t *testing.T) {
	s := New(map[int]Pauli{7: Z, 3: X, 12: Z})
	if got := s.LeadOp(); got != X {
		t.Errorf("LeadOp = %s, want X", got)
	}
	if got := New(nil).LeadOp(); got != I {
		t.Errorf("trivial LeadOp = %s, want I", got)
	}
}

func TestKeyDeterministic(t *testing.T) {
	a := New(map[int]Pauli{9: Z, 1: X, 5: Y})
	for i := 0; i < 10; i++ {
		if a.Key() != "X1 Y5 Z9" {
			t.Fatalf("key = %q, want %q", a.Key(), "X1 Y5 Z9")
		}
	}
}

func TestUniform(t *testing.T) {
	if !NewUniform(Z, 4, 5).Uniform(Z) {
		t.Error("expected uniform Z")
	}
	if NewUniform(Z, 4, 5).Uniform(X) {
		t.Error("Z stabilizer is not uniform X")
	}
	if New(map[int]Pauli{1: X, 2: Y}).Uniform(X) {
		t.Error("mixed stabilizer is not uniform")
	}
	if New(nil).Uniform(X) {
		t.Error("trivial stabilizer is not uniform")
	}
}
