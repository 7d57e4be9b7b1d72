package stats

import (
	"math"
	"testing"

	"github.com/san-kum/baconshor/internal/code"
)

func TestCollect(t *testing.T) {
	l, err := code.NewLattice(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	history := [][]code.Edge{
		{code.NewEdge(1, 4), code.NewEdge(2, 5)}, // two XX generators
		{code.NewEdge(1, 2)},                     // merges them into one row stabilizer
	}

	s := Collect(l, history)
	if s.Steps() != 2 {
		t.Fatalf("steps = %d, want 2", s.Steps())
	}

	if s.Count[0] != 2 || s.XCount[0] != 2 || s.ZCount[0] != 0 {
		t.Errorf("step 1: count=%v x=%v z=%v", s.Count[0], s.XCount[0], s.ZCount[0])
	}
	if s.MeanWeight[0] != 2 {
		t.Errorf("step 1 mean weight = %v, want 2", s.MeanWeight[0])
	}

	// Step 2 group: {X1 X2 X4 X5, Z1 Z2} -> mean weight 3.
	if s.Count[1] != 2 || s.XCount[1] != 1 || s.ZCount[1] != 1 || s.Mixed[1] != 0 {
		t.Errorf("step 2: count=%v x=%v z=%v mixed=%v", s.Count[1], s.XCount[1], s.ZCount[1], s.Mixed[1])
	}
	if math.Abs(s.MeanWeight[1]-3) > 1e-12 {
		t.Errorf("step 2 mean weight = %v, want 3", s.MeanWeight[1])
	}
}

func TestCollect_EmptySteps(t *testing.T) {
	l, _ := code.NewLattice(2, 2)
	s := Collect(l, [][]code.Edge{nil, nil})

	if s.Steps() != 2 {
		t.Fatalf("steps = %d, want 2", s.Steps())
	}
	if s.Count[0] != 0 || s.MeanWeight[0] != 0 {
		t.Errorf("empty step should report zero stats, got count=%v mean=%v", s.Count[0], s.MeanWeight[0])
	}
}
