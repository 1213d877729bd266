// Package theme holds the shared palette and styles. Views read from
// here; nothing mutates it after init.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/whyisjake/today-tui/internal/config"
)

// depthPalette cycles indent-bar colors by comment nesting depth.
var depthPalette = []lipgloss.Color{
	"#FF4500", // orange
	"#0079D3", // blue
	"#46D160", // green
	"#FFD635", // gold
	"#9370DB", // purple
	"#FF66AC", // pink
}

// DepthColor returns the indent-bar color for a nesting depth.
func DepthColor(depth int) lipgloss.Color {
	return depthPalette[depth%len(depthPalette)]
}

// PaletteSize is the number of colors DepthColor cycles through.
func PaletteSize() int {
	return len(depthPalette)
}

// accentHex maps the configurable accent names to their colors.
var accentHex = map[config.Accent]string{
	config.AccentOrange: "#FF4500",
	config.AccentBlue:   "#0079D3",
	config.AccentGreen:  "#46D160",
	config.AccentRed:    "#EA0027",
	config.AccentPurple: "#9370DB",
	config.AccentPink:   "#FF66AC",
}

// AccentHex returns the hex value for an accent name.
func AccentHex(a config.Accent) string {
	if hex, ok := accentHex[a]; ok {
		return hex
	}
	return accentHex[config.AccentOrange]
}

// AccentColor returns the accent as a lipgloss color.
func AccentColor(a config.Accent) lipgloss.Color {
	return lipgloss.Color(AccentHex(a))
}

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	MetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#828282"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF585B")).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	StatusBarTab = lipgloss.NewStyle().
			Background(lipgloss.Color("#555555")).
			Foreground(lipgloss.Color("#CCCCCC")).
			Padding(0, 1)
)
