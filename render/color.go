// Copyright © 2026 The lovels authors

package render

import (
	"fmt"
	"os"
)

// ColorMode controls when ANSI color codes are used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // detect based on terminal and NO_COLOR
	ColorAlways                  // always use colors
	ColorNever                   // never use colors
)

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q: want auto, always or never", s)
}

// Palette holds the ANSI escape sequences used by plain output.
type Palette struct {
	Bold     string
	Dim      string
	Emphasis string
	Reset    string
}

func (p Palette) enabled() bool { return p.Reset != "" }

var ansiPalette = Palette{
	Bold:     "\033[1m",
	Dim:      "\033[2m",
	Emphasis: "\033[1;4m",
	Reset:    "\033[0m",
}

// ChoosePalette selects the palette for mode and the output file.
func ChoosePalette(mode ColorMode, w *os.File) Palette {
	switch mode {
	case ColorAlways:
		return ansiPalette
	case ColorNever:
		return Palette{}
	default: // ColorAuto
		if os.Getenv("NO_COLOR") != "" {
			return Palette{}
		}
		if !isTerminal(w) {
			return Palette{}
		}
		return ansiPalette
	}
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
