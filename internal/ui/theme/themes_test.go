package theme

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestAllThemesRegistered(t *testing.T) {
	want := []string{"catppuccin", "dracula", "gruvbox", "tokyonight"}
	if got := Available(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
}

func TestDefaultThemeIsCurrent(t *testing.T) {
	SetTheme(DefaultName)
	if CurrentName() != DefaultName {
		t.Fatalf("expected %q current, got %q", DefaultName, CurrentName())
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultName) })
	for _, name := range []string{"dracula", "gruvbox", "catppuccin"} {
		if !SetTheme(name) {
			t.Errorf("SetTheme(%q) returned false", name)
			continue
		}
		if CurrentName() != name {
			t.Errorf("CurrentName() = %q, expected %q", CurrentName(), name)
		}
	}
	if SetTheme("nonexistent-theme") {
		t.Error("SetTheme on unknown name should return false")
	}
}

func TestCycleThemeWraps(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultName) })
	SetTheme("tokyonight")
	if got := CycleTheme(); got != "catppuccin" {
		t.Fatalf("expected wrap to catppuccin, got %q", got)
	}
	if got := CycleTheme(); got != "dracula" {
		t.Fatalf("expected dracula next, got %q", got)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultName) })
	empty := lipgloss.AdaptiveColor{}
	for _, name := range Available() {
		SetTheme(name)
		v := reflect.ValueOf(Current())
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).Interface() == empty {
				t.Errorf("theme %q leaves %s unset", name, v.Type().Field(i).Name)
			}
		}
	}
}
