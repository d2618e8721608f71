package tui

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

func TestThemeByName(t *testing.T) {
	if names := ThemeNames(); !reflect.DeepEqual(names, []string{"default", "mono", "neon"}) {
		t.Errorf("ThemeNames() = %v, expected [default mono neon]", names)
	}

	for _, name := range ThemeNames() {
		theme, err := ThemeByName(name)
		if err != nil {
			t.Errorf("ThemeByName(%q) error: %v", name, err)
			continue
		}
		if theme.Name != name {
			t.Errorf("ThemeByName(%q).Name = %q", name, theme.Name)
		}
		if name != "mono" && len(theme.Palette) == 0 {
			t.Errorf("ThemeByName(%q) has an empty palette", name)
		}
	}

	if theme, err := ThemeByName(""); err != nil || theme.Name != "default" {
		t.Errorf("ThemeByName(\"\") = %q, %v, expected default", theme.Name, err)
	}
	for _, name := range []string{"plaid", "solarized"} {
		if _, err := ThemeByName(name); err == nil {
			t.Errorf("ThemeByName(%s) should fail", name)
		}
	}
}

func TestNeonThemeDoesNotMutateDefault(t *testing.T) {
	before := DefaultTheme().Palette[core.ColorBrightRed].Render("x")
	_ = NeonTheme()
	after := DefaultTheme().Palette[core.ColorBrightRed].Render("x")
	if before != after {
		t.Error("NeonTheme should not change the default palette")
	}
}

func TestSetTheme(t *testing.T) {
	prev := GetTheme()
	t.Cleanup(func() { SetTheme(prev) })

	SetTheme(MonochromeTheme())
	if GetTheme().Name != "mono" {
		t.Errorf("GetTheme().Name = %q, expected mono", GetTheme().Name)
	}
	SetTheme(NeonTheme())
	if GetTheme().Name != "neon" {
		t.Errorf("GetTheme().Name = %q, expected neon", GetTheme().Name)
	}
}
