package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Theme contains the configurable visual styles.
type Theme struct {
	Name string

	// Palette maps screen colors to terminal styles
	Palette map[core.Color]lipgloss.Style

	// Help footer
	Help lipgloss.Style

	// Preset picker styles
	MenuTitle       lipgloss.Style
	MenuDescription lipgloss.Style
	TableHeader     lipgloss.Style
	TableSelected   lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DefaultTheme returns the default visual theme using the 16 ANSI colors.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("1"),
			core.ColorGreen:         fg("2"),
			core.ColorYellow:        fg("3"),
			core.ColorBlue:          fg("4"),
			core.ColorMagenta:       fg("5"),
			core.ColorCyan:          fg("6"),
			core.ColorWhite:         fg("7"),
			core.ColorBrightRed:     fg("9"),
			core.ColorBrightGreen:   fg("10"),
			core.ColorBrightYellow:  fg("11"),
			core.ColorBrightBlue:    fg("12"),
			core.ColorBrightMagenta: fg("13"),
			core.ColorBrightCyan:    fg("14"),
			core.ColorBrightWhite:   fg("15"),
			core.ColorOrange:        fg("208"),
			core.ColorGray:          fg("245"),
		},

		Help: fg("241"),

		MenuTitle:       fg("229").Bold(true),
		MenuDescription: fg("245"),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableSelected: fg("229").Background(lipgloss.Color("57")),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.Palette = clonePalette(theme.Palette)
	theme.Palette[core.ColorBrightBlue] = fg("87")    // Neon cyan
	theme.Palette[core.ColorGreen] = fg("118")        // Neon green
	theme.Palette[core.ColorBrightRed] = fg("199")    // Neon pink
	theme.Palette[core.ColorBlue] = fg("171")         // Neon purple
	theme.Palette[core.ColorBrightYellow] = fg("227") // Neon yellow
	theme.MenuTitle = fg("51").Bold(true)
	theme.TableSelected = fg("16").Background(lipgloss.Color("199"))
	return theme
}

// MonochromeTheme returns a theme without colors.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	theme.Palette = make(map[core.Color]lipgloss.Style)
	theme.Help = lipgloss.NewStyle()
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuDescription = lipgloss.NewStyle()
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	return theme
}

func clonePalette(p map[core.Color]lipgloss.Style) map[core.Color]lipgloss.Style {
	out := make(map[core.Color]lipgloss.Style, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
	"mono":    MonochromeTheme,
}

// ThemeNames returns the known theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName looks up a theme. An empty name selects the default theme.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme(), nil
	}
	f, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("tui: unknown theme %q (available: %v)", name, ThemeNames())
	}
	return f(), nil
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
