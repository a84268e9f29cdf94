package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode controls when escape sequences are written.
type ColorMode string

const (
	// ColorModeAuto colors output only when it goes to a terminal and NO_COLOR is unset.
	ColorModeAuto   ColorMode = "auto"
	// ColorModeAlways colors output unconditionally.
	ColorModeAlways ColorMode = "always"
	// ColorModeNever disables color.
	ColorModeNever  ColorMode = "never"

	noColorEnvironmentVariable  = "NO_COLOR"
	errorUnknownColorModeFormat = "unsupported color mode %q; accepted values: auto, always, never"
)

// ParseColorMode converts a flag or configuration value into a ColorMode.
// The empty string selects ColorModeAuto.
func ParseColorMode(value string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ColorModeAuto:
		return ColorModeAuto, nil
	case ColorModeAlways:
		return ColorModeAlways, nil
	case ColorModeNever:
		return ColorModeNever, nil
	default:
		return "", fmt.Errorf(errorUnknownColorModeFormat, value)
	}
}

// ShouldColor decides whether output written to destination gets colored.
func ShouldColor(mode ColorMode, destination *os.File) bool {
	switch mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	}
	if _, noColorSet := os.LookupEnv(noColorEnvironmentVariable); noColorSet {
		return false
	}
	if destination == nil {
		return false
	}
	fileDescriptor := destination.Fd()
	return isatty.IsTerminal(fileDescriptor) || isatty.IsCygwinTerminal(fileDescriptor)
}
