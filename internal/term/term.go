// Package term provides color state and terminal detection.
//
// Colors are package-level values because multiple packages (logging,
// display) need them for output formatting. [Configure] sets the global
// color switch once during startup; when colors are disabled every
// Sprint is a plain passthrough.
package term

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/backmassage/solidname/internal/config"
)

// Palette. All bold, high-intensity.
var (
	Red     = color.New(color.Bold, color.FgHiRed)
	Green   = color.New(color.Bold, color.FgHiGreen)
	Yellow  = color.New(color.Bold, color.FgHiYellow)
	Blue    = color.New(color.Bold, color.FgHiBlue)
	Cyan    = color.New(color.Bold, color.FgHiCyan)
	Magenta = color.New(color.Bold, color.FgHiMagenta)
)

// autoDisabled is fatih/color's own detection (NO_COLOR, TERM=dumb, no TTY),
// captured before anyone overrides it.
var autoDisabled = color.NoColor

// Configure resolves the color mode and sets the global switch. Call once
// during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default: // ColorAuto
		color.NoColor = autoDisabled
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
