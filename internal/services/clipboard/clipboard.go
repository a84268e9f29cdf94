// Package clipboard copies rendered trees to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable reports that no clipboard utility is installed (e.g. xclip or xsel on Linux).
var ErrClipboardUnavailable = errors.New("system clipboard is unavailable")

const errorCopyFormat = "copy %d bytes to clipboard: %w"

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	writeAll    func(string) error
	unsupported bool
}

// NewService constructs a clipboard Service backed by the operating system clipboard.
func NewService() *Service {
	return &Service{writeAll: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// Copy replaces the clipboard contents with text.
func (service *Service) Copy(text string) error {
	if service.unsupported {
		return ErrClipboardUnavailable
	}
	if writeError := service.writeAll(text); writeError != nil {
		return fmt.Errorf(errorCopyFormat, len(text), writeError)
	}
	return nil
}

var _ Copier = (*Service)(nil)
