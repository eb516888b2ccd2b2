package terminal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"colorterm truecolor", map[string]string{"COLORTERM": "truecolor"}, ColorModeTrueColor},
		{"colorterm 24bit", map[string]string{"COLORTERM": "24bit"}, ColorModeTrueColor},
		{"kitty", map[string]string{"KITTY_WINDOW_ID": "1"}, ColorModeTrueColor},
		{"wezterm", map[string]string{"WEZTERM_PANE": "0"}, ColorModeTrueColor},
		{"term direct", map[string]string{"TERM": "xterm-direct"}, ColorModeTrueColor},
		{"plain xterm", map[string]string{"TERM": "xterm-256color"}, ColorMode256},
		{"empty", map[string]string{}, ColorMode256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectColorMode(envOf(tt.env)); got != tt.want {
				t.Errorf("DetectColorMode = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveColorMode(t *testing.T) {
	truecolorEnv := envOf(map[string]string{"COLORTERM": "truecolor"})
	if got := ResolveColorMode("256", truecolorEnv); got != ColorMode256 {
		t.Errorf("Expected explicit 256 to win over environment, got %v", got)
	}
	if got := ResolveColorMode("auto", truecolorEnv); got != ColorModeTrueColor {
		t.Errorf("Expected auto to detect truecolor, got %v", got)
	}
	if got := ResolveColorMode("TrueColor", envOf(nil)); got != ColorModeTrueColor {
		t.Errorf("Expected case-insensitive truecolor, got %v", got)
	}
}

func TestApplyColorMode(t *testing.T) {
	got := map[string]string{}
	set := func(k, v string) error { got[k] = v; return nil }

	if err := ApplyColorMode(ColorMode256, set); err != nil {
		t.Fatal(err)
	}
	if err := ApplyColorMode(ColorModeTrueColor, set); err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"TCELL_TRUECOLOR": "disable", "COLORTERM": "truecolor"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
}
