// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

// ColorScheme holds the termui colors used by the height chart.
type ColorScheme struct {
	AVLBar      ui.Color
	RedBlackBar ui.Color
	BoundBar    ui.Color
	Number      ui.Color
	Label       ui.Color
	Border      ui.Color
	BorderFocus ui.Color
	Text        ui.Color
	TextMuted   ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// ANSI escape codes for plain terminal output, set by InitializeColors.
var Green, Info, Warning, Error, Reset string

func init() {
	InitializeColors()
}

// themeFromEnv maps a theme name such as "solarized-dark" to a mode.
func themeFromEnv(theme string) TerminalMode {
	theme = strings.ToLower(theme)
	if strings.Contains(theme, "dark") {
		return TerminalModeDark
	} else if strings.Contains(theme, "light") {
		return TerminalModeLight
	}
	return TerminalModeUnknown
}

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if mode := themeFromEnv(os.Getenv(env)); mode != TerminalModeUnknown {
			return mode
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		AVLBar:      ui.Color(4), // Dark Blue
		RedBlackBar: ui.Color(1), // Dark Red
		BoundBar:    ui.Color(8),
		Number:      ui.ColorWhite,
		Label:       ui.ColorBlack,
		Border:      ui.Color(8),
		BorderFocus: ui.Color(4),
		Text:        ui.ColorBlack,
		TextMuted:   ui.Color(240),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		AVLBar:      ui.Color(14), // Bright Cyan
		RedBlackBar: ui.Color(9),  // Bright Red
		BoundBar:    ui.Color(240),
		Number:      ui.ColorBlack,
		Label:       ui.ColorWhite,
		Border:      ui.Color(240),
		BorderFocus: ui.Color(14),
		Text:        ui.ColorWhite,
		TextMuted:   ui.Color(245),
	}
}

// InitializeColors detects terminal mode and sets up the appropriate color scheme
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// GetANSIColors returns escape codes suited to the detected mode.
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}

func StyleBorder(focused bool) ui.Style {
	scheme := GetColorScheme()
	if focused {
		return ui.NewStyle(scheme.BorderFocus)
	}
	return ui.NewStyle(scheme.Border)
}

func StyleText() ui.Style {
	return ui.NewStyle(GetColorScheme().Text)
}

func StyleTextMuted() ui.Style {
	return ui.NewStyle(GetColorScheme().TextMuted)
}

// engineBarColor picks the chart color for an engine.
func engineBarColor(engine string) ui.Color {
	scheme := GetColorScheme()
	if engine == EngineRedBlack {
		return scheme.RedBlackBar
	}
	return scheme.AVLBar
}
