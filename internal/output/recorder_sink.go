package output

import (
	"fmt"
	"strings"
)

const (
	transcriptOpenFormat = "<%s>"
	transcriptClose      = "</>"
)

// RecorderSink keeps rendered output in memory. Text returns the plain output;
// Transcript additionally marks color changes as <cyan>...</>.
type RecorderSink struct {
	plain      strings.Builder
	transcript strings.Builder
	active     Color
}

// NewRecorderSink returns an empty recorder.
func NewRecorderSink() *RecorderSink {
	return &RecorderSink{}
}

// WriteText records text in the active color.
func (sink *RecorderSink) WriteText(text string) error {
	sink.plain.WriteString(text)
	sink.transcript.WriteString(text)
	return nil
}

// WriteColored records a color change followed by text.
func (sink *RecorderSink) WriteColored(text string, foreground Color) error {
	if foreground == ColorDefault {
		if resetError := sink.Reset(); resetError != nil {
			return resetError
		}
		return sink.WriteText(text)
	}
	if sink.active != foreground {
		fmt.Fprintf(&sink.transcript, transcriptOpenFormat, foreground)
		sink.active = foreground
	}
	return sink.WriteText(text)
}

// Reset records the end of the active color, if any.
func (sink *RecorderSink) Reset() error {
	if sink.active == ColorDefault {
		return nil
	}
	sink.transcript.WriteString(transcriptClose)
	sink.active = ColorDefault
	return nil
}

// Text returns everything written so far without styling.
func (sink *RecorderSink) Text() string {
	return sink.plain.String()
}

// Transcript returns everything written so far with color markers.
func (sink *RecorderSink) Transcript() string {
	return sink.transcript.String()
}

// ActiveColor returns the color that is currently set.
func (sink *RecorderSink) ActiveColor() Color {
	return sink.active
}

var _ Sink = (*RecorderSink)(nil)
