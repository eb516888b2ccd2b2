package terminal

import (
	"strings"
)

// ColorMode is the color depth the screen is driven with
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// trueColorHints are variables set only by terminals known to render 24-bit color
var trueColorHints = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"ALACRITTY_LOG",
	"WEZTERM_PANE",
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode(getenv func(string) string) ColorMode {
	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, k := range trueColorHints {
		if getenv(k) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ResolveColorMode maps the configured name to a mode, detecting on "auto" or unknown names
func ResolveColorMode(name string, getenv func(string) string) ColorMode {
	switch strings.ToLower(name) {
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	case "256":
		return ColorMode256
	}
	return DetectColorMode(getenv)
}

// ApplyColorMode steers tcell's color selection; call before tcell.NewScreen
func ApplyColorMode(mode ColorMode, setenv func(key, value string) error) error {
	if mode == ColorModeTrueColor {
		return setenv("COLORTERM", "truecolor")
	}
	return setenv("TCELL_TRUECOLOR", "disable")
}
