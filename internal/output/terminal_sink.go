package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
)

const lineBreak = "\n"

// TerminalSink writes ANSI-colored text to a line-buffered writer.
type TerminalSink struct {
	writer       *bufio.Writer
	colorEnabled bool
	palette      map[Color]*color.Color
	reset        *color.Color
	active       *color.Color
}

// NewTerminalSink wraps destination. When colorEnabled is false the sink
// emits plain text and ignores color requests.
func NewTerminalSink(destination io.Writer, colorEnabled bool) *TerminalSink {
	palette := map[Color]*color.Color{
		ColorCyan:    color.New(color.FgCyan),
		ColorMagenta: color.New(color.FgMagenta),
	}
	reset := color.New(color.Reset)
	for _, sequence := range []*color.Color{palette[ColorCyan], palette[ColorMagenta], reset} {
		if colorEnabled {
			sequence.EnableColor()
		} else {
			sequence.DisableColor()
		}
	}
	return &TerminalSink{
		writer:       bufio.NewWriter(destination),
		colorEnabled: colorEnabled,
		palette:      palette,
		reset:        reset,
	}
}

// WriteText writes text in the currently active color.
func (sink *TerminalSink) WriteText(text string) error {
	if _, writeError := sink.writer.WriteString(text); writeError != nil {
		return writeError
	}
	if strings.Contains(text, lineBreak) {
		return sink.writer.Flush()
	}
	return nil
}

// WriteColored activates foreground and writes text. ColorDefault behaves like Reset followed by WriteText.
func (sink *TerminalSink) WriteColored(text string, foreground Color) error {
	paletteColor, known := sink.palette[foreground]
	if !known {
		if resetError := sink.Reset(); resetError != nil {
			return resetError
		}
		return sink.WriteText(text)
	}
	if sink.active != paletteColor {
		paletteColor.SetWriter(sink.writer)
		sink.active = paletteColor
	}
	return sink.WriteText(text)
}

// Reset returns the terminal to its default foreground.
func (sink *TerminalSink) Reset() error {
	if sink.active == nil {
		return nil
	}
	// UnsetWriter consults the global color.NoColor, so the reset is written as its own sequence.
	sink.reset.SetWriter(sink.writer)
	sink.active = nil
	return nil
}

// ColorEnabled reports whether escape sequences are emitted.
func (sink *TerminalSink) ColorEnabled() bool {
	return sink.colorEnabled
}

// Flush resets styling and writes any buffered text.
func (sink *TerminalSink) Flush() error {
	if resetError := sink.Reset(); resetError != nil {
		return resetError
	}
	return sink.writer.Flush()
}

var _ Sink = (*TerminalSink)(nil)
