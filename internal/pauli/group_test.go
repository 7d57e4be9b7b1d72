package pauli

import "testing"

func TestGroup_Dedup(t *testing.T) {
	g := NewGroup()
	g.Add(NewUniform(X, 1, 2))
	g.Add(NewUniform(X, 1, 2))
	g.Add(NewUniform(Z, 1, 4))

	if g.Len() != 2 {
		t.Errorf("len = %d, want 2", g.Len())
	}
	if !g.Contains(NewUniform(X, 1, 2)) {
		t.Error("group should contain X1 X2")
	}
}

func TestGroup_ListSorted(t *testing.T) {
	g := NewGroup(
		NewUniform(Z, 1, 4),
		NewUniform(X, 1, 2),
		NewUniform(X, 4, 5),
	)

	keys := make([]string, 0, g.Len())
	for _, s := range g.List() {
		keys = append(keys, s.Key())
	}
	want := []string{"X1 X2", "X4 X5", "Z1 Z4"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("list order = %v, want %v", keys, want)
		}
	}
}

func TestGroup_RemoveClone(t *testing.T) {
	g := NewGroup(NewUniform(X, 1, 2), NewUniform(Z, 1, 4))
	c := g.Clone()

	g.Remove(NewUniform(X, 1, 2))
	if g.Len() != 1 {
		t.Errorf("len after remove = %d, want 1", g.Len())
	}
	if c.Len() != 2 {
		t.Errorf("clone should be unaffected, len = %d", c.Len())
	}
}
