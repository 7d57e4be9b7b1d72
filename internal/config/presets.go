package config

import (
	"sort"

	"github.com/san-kum/baconshor/internal/code"
)

// Preset measurement schedules, generated for whatever lattice size the
// config asks for.
var presets = map[string]func(l *code.Lattice) [][]code.Edge{
	// One round of vertical XX pair measurements.
	"x_columns": func(l *code.Lattice) [][]code.Edge {
		return [][]code.Edge{verticalEdges(l)}
	},
	// One round of horizontal ZZ pair measurements.
	"z_rows": func(l *code.Lattice) [][]code.Edge {
		return [][]code.Edge{horizontalEdges(l)}
	},
	// Alternating XX and ZZ rounds, one full period plus the round
	// that locks in the steady state.
	"full_cycle": func(l *code.Lattice) [][]code.Edge {
		return [][]code.Edge{verticalEdges(l), horizontalEdges(l), verticalEdges(l)}
	},
}

// GetPreset returns the schedule named by preset for lattice l, or nil
// if no such preset exists.
func GetPreset(name string, l *code.Lattice) [][]code.Edge {
	gen, ok := presets[name]
	if !ok {
		return nil
	}
	return gen(l)
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func verticalEdges(l *code.Lattice) []code.Edge {
	var out []code.Edge
	for j := 0; j <= l.Cols; j++ {
		for i := 0; i < l.Rows; i++ {
			out = append(out, code.NewEdge(l.QubitAt(i, j), l.QubitAt(i+1, j)))
		}
	}
	return out
}

func horizontalEdges(l *code.Lattice) []code.Edge {
	var out []code.Edge
	for i := 0; i <= l.Rows; i++ {
		for j := 0; j < l.Cols; j++ {
			out = append(out, code.NewEdge(l.QubitAt(i, j), l.QubitAt(i, j+1)))
		}
	}
	return out
}
