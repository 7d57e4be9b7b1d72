// Package pauli implements sparse Pauli stabilizer bookkeeping: single
// generators, phase-free products, commutation checks against joint
// two-qubit measurements, and canonical-key sets of generators.
package pauli

import "fmt"

// Pauli is a single-qubit Pauli operator.
type Pauli byte

const (
	I Pauli = 'I'
	X Pauli = 'X'
	Z Pauli = 'Z'
	Y Pauli = 'Y'
)

func (p Pauli) String() string {
	return string(byte(p))
}

// Parse returns the Pauli operator named by s.
func Parse(s string) (Pauli, error) {
	switch s {
	case "I":
		return I, nil
	case "X":
		return X, nil
	case "Z":
		return Z, nil
	case "Y":
		return Y, nil
	}
	return I, fmt.Errorf("unknown pauli operator: %q", s)
}

// Mul multiplies two single-qubit Paulis, ignoring phase. Equal operators
// cancel to identity; any two distinct non-identity operators give the third.
func Mul(a, b Pauli) Pauli {
	if a == I {
		return b
	}
	if b == I {
		return a
	}
	if a == b {
		return I
	}
	switch {
	case a != X && b != X:
		return X
	case a != Z && b != Z:
		return Z
	default:
		return Y
	}
}
