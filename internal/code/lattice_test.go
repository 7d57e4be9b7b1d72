package code

import (
	"testing"
)

func TestNewLattice_Bounds(t *testing.T) {
	if _, err := NewLattice(0, 3); err == nil {
		t.Error("expected error for 0 rows")
	}
	if _, err := NewLattice(2, 0); err == nil {
		t.Error("expected error for 0 cols")
	}
	l, err := NewLattice(2, 2)
	if err != nil {
		t.Fatalf("NewLattice: %v", err)
	}
	if l.NumQubits() != 9 {
		t.Errorf("NumQubits = %d, want 9", l.NumQubits())
	}
}

func TestQubitNumbering(t *testing.T) {
	l, _ := NewLattice(2, 2)

	tests := []struct {
		row, col, q int
	}{
		{0, 0, 1},
		{0, 2, 3},
		{1, 1, 5},
		{2, 0, 7},
		{2, 2, 9},
	}
	for _, tt := range tests {
		if got := l.QubitAt(tt.row, tt.col); got != tt.q {
			t.Errorf("QubitAt(%d,%d) = %d, want %d", tt.row, tt.col, got, tt.q)
		}
		row, col, ok := l.PositionOf(tt.q)
		if !ok || row != tt.row || col != tt.col {
			t.Errorf("PositionOf(%d) = (%d,%d,%v), want (%d,%d)", tt.q, row, col, ok, tt.row, tt.col)
		}
	}

	if _, _, ok := l.PositionOf(0); ok {
		t.Error("qubit 0 should not exist")
	}
	if _, _, ok := l.PositionOf(10); ok {
		t.Error("qubit 10 should not exist on 2x2")
	}
}

func TestEdges_Count(t *testing.T) {
	l, _ := NewLattice(2, 3)
	// horizontal: (rows+1)*cols, vertical: rows*(cols+1)
	want := 3*3 + 2*4
	if got := len(l.Edges()); got != want {
		t.Errorf("edge count = %d, want %d", got, want)
	}

	seen := make(map[Edge]bool)
	for _, e := range l.Edges() {
		if e.A >= e.B {
			t.Errorf("edge %s not normalized", e)
		}
		if seen[e] {
			t.Errorf("duplicate edge %s", e)
		}
		seen[e] = true
	}
}

func TestNearestEdge(t *testing.T) {
	l, _ := NewLattice(2, 2)

	tests := []struct {
		name string
		x, y float64
		want Edge
	}{
		// Plot coordinates: qubit 1 at (0,2), qubit 2 at (1,2), qubit 4 at (0,1).
		{"midpoint of top edge", 0.5, 2.0, NewEdge(1, 2)},
		{"near left vertical edge", 0.05, 1.45, NewEdge(1, 4)},
		{"bottom right horizontal", 1.6, 0.1, NewEdge(8, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.NearestEdge(tt.x, tt.y); got != tt.want {
				t.Errorf("NearestEdge(%.2f, %.2f) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLatticeString(t *testing.T) {
	l, _ := NewLattice(1, 2)
	want := " 1  2  3 \n 4  5  6 \n"
	if got := l.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
