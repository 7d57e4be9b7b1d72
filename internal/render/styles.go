package render

import "github.com/charmbracelet/lipgloss"

// Palette maps scene element classes to lipgloss styles. All colors
// live here; the renderers take no ad-hoc color literals.
type Palette struct {
	Qubit    lipgloss.Style
	GridLine lipgloss.Style

	XEdge     lipgloss.Style
	ZEdge     lipgloss.Style
	PrevXEdge lipgloss.Style
	PrevZEdge lipgloss.Style
	Selected  lipgloss.Style
	Cursor    lipgloss.Style

	XCell     lipgloss.Style
	ZCell     lipgloss.Style
	MixedCell lipgloss.Style

	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
}

// DarkPalette is the default terminal theme. XX measurements read blue,
// ZZ red, matching the plot export colors.
func DarkPalette() Palette {
	return Palette{
		Qubit:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		GridLine: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		XEdge:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		ZEdge:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		PrevXEdge: lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
		PrevZEdge: lipgloss.NewStyle().Foreground(lipgloss.Color("95")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("255")),

		XCell:     lipgloss.NewStyle().Foreground(lipgloss.Color("31")),
		ZCell:     lipgloss.NewStyle().Foreground(lipgloss.Color("132")),
		MixedCell: lipgloss.NewStyle().Foreground(lipgloss.Color("71")),

		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// PlainPalette renders without any styling, for piped output and tests.
func PlainPalette() Palette {
	return Palette{}
}
