package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestAppTheme_Overrides(t *testing.T) {
	th := NewAppTheme()

	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("Expected padding 3, got %v", got)
	}
	if got, want := th.Size(theme.SizeNameScrollBar), theme.DefaultTheme().Size(theme.SizeNameScrollBar); got != want {
		t.Errorf("Expected default scrollbar size %v, got %v", want, got)
	}

	light := th.Color(theme.ColorNameBackground, theme.VariantLight)
	dark := th.Color(theme.ColorNameBackground, theme.VariantDark)
	if light == dark {
		t.Error("Light and dark backgrounds should differ")
	}
}
