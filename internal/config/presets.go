package config

import "sort"

// Presets are named starting colors for the background.
var Presets = map[string][3]int{
	"ocean":  {22, 120, 180},
	"dusk":   {120, 60, 140},
	"forest": {30, 110, 60},
	"ember":  {190, 70, 30},
	"slate":  {70, 80, 95},
}

func GetPreset(name string) ([3]int, bool) {
	c, ok := Presets[name]
	return c, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
