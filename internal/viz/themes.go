package viz

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownTheme = errors.New("viz: unknown theme")

// Theme colors the status line below the scene.
type Theme struct {
	Name  string
	Text  lipgloss.Color
	Label lipgloss.Color
	Value lipgloss.Color
	Help  lipgloss.Color
}

var (
	ThemeMinimal = Theme{
		Name:  "minimal",
		Text:  lipgloss.Color("245"),
		Label: lipgloss.Color("240"),
		Value: lipgloss.Color("252"),
		Help:  lipgloss.Color("238"),
	}

	ThemeOcean = Theme{
		Name:  "ocean",
		Text:  lipgloss.Color("#e0f0ff"),
		Label: lipgloss.Color("#4488aa"),
		Value: lipgloss.Color("#00a8cc"),
		Help:  lipgloss.Color("#2a5577"),
	}

	ThemeSunset = Theme{
		Name:  "sunset",
		Text:  lipgloss.Color("#fff5f5"),
		Label: lipgloss.Color("#8b6b8c"),
		Value: lipgloss.Color("#feca57"),
		Help:  lipgloss.Color("#5c4560"),
	}

	Themes = []Theme{
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name. An empty name selects the minimal theme.
func GetTheme(name string) (Theme, error) {
	if name == "" {
		return ThemeMinimal, nil
	}
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownTheme, name, ThemeNames())
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
