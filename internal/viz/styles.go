package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/bubblescape/internal/scene"
)

type styles struct {
	status lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	help   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		status: lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1),
		label:  lipgloss.NewStyle().Foreground(t.Label),
		value:  lipgloss.NewStyle().Foreground(t.Value).Bold(true),
		help:   lipgloss.NewStyle().Foreground(t.Help).Italic(true),
	}
}

func (s styles) field(label, value string) string {
	return s.label.Render(label+" ") + s.value.Render(value)
}

// swatch renders a two-cell block in color c.
func swatch(c scene.RGB) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
