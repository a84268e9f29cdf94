// Package output renders the directory tree to colored and plain text sinks.
package output

// Color identifies a foreground color understood by every Sink.
type Color int

const (
	// ColorDefault is the terminal's default foreground.
	ColorDefault Color = iota
	// ColorCyan marks directory names.
	ColorCyan
	// ColorMagenta marks hidden file names.
	ColorMagenta
)

// String returns the lower-case color name.
func (color Color) String() string {
	switch color {
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	default:
		return "default"
	}
}

// Sink accepts styled text. A color set by WriteColored stays active for
// subsequent writes until Reset is called.
type Sink interface {
	WriteText(text string) error
	WriteColored(text string, foreground Color) error
	Reset() error
}

// MultiSink duplicates every call to each of its sinks in order.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink returns a Sink that forwards to all provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: append([]Sink(nil), sinks...)}
}

// WriteText forwards text to every sink, stopping at the first error.
func (multiSink *MultiSink) WriteText(text string) error {
	for _, sink := range multiSink.sinks {
		if writeError := sink.WriteText(text); writeError != nil {
			return writeError
		}
	}
	return nil
}

// WriteColored forwards colored text to every sink, stopping at the first error.
func (multiSink *MultiSink) WriteColored(text string, foreground Color) error {
	for _, sink := range multiSink.sinks {
		if writeError := sink.WriteColored(text, foreground); writeError != nil {
			return writeError
		}
	}
	return nil
}

// Reset resets every sink, stopping at the first error.
func (multiSink *MultiSink) Reset() error {
	for _, sink := range multiSink.sinks {
		if resetError := sink.Reset(); resetError != nil {
			return resetError
		}
	}
	return nil
}

var _ Sink = (*MultiSink)(nil)
