package render

// Theme is a named color palette shared by the render sinks. Colors are CSS
// color strings so SVG can embed them directly.
type Theme struct {
	Name       string
	Background string
	Stroke     string // lines and point outlines
	Fill       string // positive bars and segments
	FillAlt    string // negative bars
	Baseline   string
	Grid       string
}

// Light is the default palette.
var Light = Theme{
	Name:       "light",
	Background: "#ffffff",
	Stroke:     "#1a6feb",
	Fill:       "#1a6feb",
	FillAlt:    "#d64545",
	Baseline:   "#555555",
	Grid:       "#e0e0e0",
}

// Dark inverts the background for terminal-adjacent embedding.
var Dark = Theme{
	Name:       "dark",
	Background: "#1e1e2e",
	Stroke:     "#7aa2f7",
	Fill:       "#7aa2f7",
	FillAlt:    "#f7768e",
	Baseline:   "#aaaaaa",
	Grid:       "#3b3b4f",
}

// Themes maps theme names to palettes.
var Themes = map[string]Theme{
	Light.Name: Light,
	Dark.Name:  Dark,
}

// ThemeByName returns the named theme, falling back to Light for unknown
// names so rendering never fails on a palette typo.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Light
}
