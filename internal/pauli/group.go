package pauli

import "sort"

// Group is a set of stabilizer generators, deduplicated by canonical key.
type Group struct {
	members map[string]*Stabilizer
}

func NewGroup(stabs ...*Stabilizer) *Group {
	g := &Group{members: make(map[string]*Stabilizer)}
	for _, s := range stabs {
		g.Add(s)
	}
	return g
}

// Add inserts s unless an equal member is already present.
func (g *Group) Add(s *Stabilizer) {
	g.members[s.Key()] = s
}

// Remove drops the member equal to s, if any.
func (g *Group) Remove(s *Stabilizer) {
	delete(g.members, s.Key())
}

// Contains reports whether a member equal to s is present.
func (g *Group) Contains(s *Stabilizer) bool {
	_, ok := g.members[s.Key()]
	return ok
}

func (g *Group) Len() int { return len(g.members) }

// List returns the members sorted by key for deterministic iteration.
func (g *Group) List() []*Stabilizer {
	keys := make([]string, 0, len(g.members))
	for k := range g.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Stabilizer, len(keys))
	for i, k := range keys {
		out[i] = g.members[k]
	}
	return out
}

// Clone returns a shallow copy; members are immutable in practice.
func (g *Group) Clone() *Group {
	c := &Group{members: make(map[string]*Stabilizer, len(g.members))}
	for k, s := range g.members {
		c.members[k] = s
	}
	return c
}
