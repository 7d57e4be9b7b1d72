package code

import (
	"testing"
)

func keys(res StepResult) []string {
	out := make([]string, len(res.Stabilizers))
	for i, s := range res.Stabilizers {
		out[i] = s.Key()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyStep_FirstStepInitializes(t *testing.T) {
	l, _ := NewLattice(2, 2)
	tr := NewTracker(l)

	res := tr.ApplyStep([]Edge{NewEdge(1, 4), NewEdge(2, 5)})
	if res.Step != 1 {
		t.Errorf("step = %d, want 1", res.Step)
	}
	if want := []string{"X1 X4", "X2 X5"}; !equalStrings(keys(res), want) {
		t.Errorf("stabilizers = %v, want %v", keys(res), want)
	}
}

func TestApplyStep_RejectsInvalidEdges(t *testing.T) {
	l, _ := NewLattice(2, 2)
	tr := NewTracker(l)

	res := tr.ApplyStep([]Edge{NewEdge(1, 5), NewEdge(1, 2), NewEdge(1, 99)})
	if len(res.Rejected) != 2 {
		t.Fatalf("rejected = %v, want 2 entries", res.Rejected)
	}
	if len(res.Applied) != 1 || res.Applied[0].Edge != NewEdge(1, 2) {
		t.Errorf("applied = %v, want only 1-2", res.Applied)
	}
}

func TestApplyStep_EmptySelectionAdvancesStep(t *testing.T) {
	l, _ := NewLattice(2, 2)
	tr := NewTracker(l)

	tr.ApplyStep([]Edge{NewEdge(1, 4)})
	res := tr.ApplyStep(nil)
	if res.Step != 2 {
		t.Errorf("step = %d, want 2", res.Step)
	}
	if want := []string{"X1 X4"}; !equalStrings(keys(res), want) {
		t.Errorf("stabilizers = %v, want unchanged %v", keys(res), want)
	}
}

func TestApplyStep_RemeasureIsIdempotent(t *testing.T) {
	l, _ := NewLattice(2, 2)
	tr := NewTracker(l)

	tr.ApplyStep([]Edge{NewEdge(1, 4)})
	res := tr.ApplyStep([]Edge{NewEdge(1, 4)})
	if want := []string{"X1 X4"}; !equalStrings(keys(res), want) {
		t.Errorf("stabilizers = %v, want %v", keys(res), want)
	}
}

func TestApplyStep_CrossingMeasurementRemovesGenerator(t *testing.T) {
	l, _ := NewLattice(2, 2)
	tr := NewTracker(l)

	// A lone XX generator has no merge partner; a crossing ZZ
	// measurement on a shared qubit wipes it out.
	tr.ApplyStep([]Edge{NewEdge(1, 4)})
	res := tr.ApplyStep([]Edge{NewEdge(1, 2)})
	if want := []string{"Z1 Z2"}; !equalStrings(keys(res), want) {
		t.Errorf("stabilizers = %v, want %v", keys(res), want)
	}
}

func TestApplyStep_MergesIntoRowStabilizer(t *testing.T) {
	l, _ := NewLattice(2, 2)
	tr := NewTracker(l)

	// Two XX generators sharing the top two rows merge rather than die
	// when a ZZ measurement anti-commutes with both.
	tr.ApplyStep([]Edge{NewEdge(1, 4), NewEdge(2, 5)})
	res := tr.ApplyStep([]Edge{NewEdge(1, 2)})
	if want := []string{"X1 X2 X4 X5", "Z1 Z2"}; !equalStrings(keys(res), want) {
		t.Errorf("stabilizers = %v, want %v", keys(res), want)
	}
}

func TestSnapshot_TracksCurrentAndPrevious(t *testing.T) {
	l, _ := NewLattice(2, 2)
	tr := NewTracker(l)

	tr.ApplyStep([]Edge{NewEdge(1, 4)})
	tr.ApplyStep([]Edge{NewEdge(1, 2)})

	snap := tr.Snapshot()
	if snap.Step != 2 {
		t.Errorf("snapshot step = %d, want 2", snap.Step)
	}
	if len(snap.Current) != 1 || snap.Current[0].Edge != NewEdge(1, 2) {
		t.Errorf("current = %v", snap.Current)
	}
	if len(snap.Previous) != 1 || snap.Previous[0].Edge != NewEdge(1, 4) {
		t.Errorf("previous = %v", snap.Previous)
	}
}

func TestReplay_MatchesLiveSession(t *testing.T) {
	l, _ := NewLattice(2, 2)
	live := NewTracker(l)

	history := [][]Edge{
		{NewEdge(1, 4), NewEdge(2, 5), NewEdge(3, 6)},
		{NewEdge(1, 2), NewEdge(2, 3)},
		{NewEdge(4, 7), NewEdge(5, 8)},
	}
	for _, step := range history {
		live.ApplyStep(step)
	}

	replayed := NewTracker(l)
	results := replayed.Replay(history)
	if len(results) != 3 {
		t.Fatalf("replay results = %d, want 3", len(results))
	}

	liveKeys := make([]string, 0)
	for _, s := range live.Stabilizers() {
		liveKeys = append(liveKeys, s.Key())
	}
	replayKeys := make([]string, 0)
	for _, s := range replayed.Stabilizers() {
		replayKeys = append(replayKeys, s.Key())
	}
	if !equalStrings(liveKeys, replayKeys) {
		t.Errorf("replayed group %v differs from live %v", replayKeys, liveKeys)
	}
}
