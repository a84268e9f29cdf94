package commands

import "github.com/temirov/tree/internal/pattern"

// Configuration holds the parsed listing options for one invocation.
// It is built once and never modified during a walk.
type Configuration struct {
	ShowHidden      bool
	DirectoriesOnly bool
	FullPaths       bool
	// MaxDepth stops descending once the current depth exceeds it. Nil means unlimited.
	MaxDepth *int
	// FileLimit skips opening directories whose filtered entry count exceeds it. Nil means unlimited.
	FileLimit     *int
	MatchPattern  pattern.Pattern
	IgnorePattern pattern.Pattern
}

// Counts accumulates the number of directories and files printed by a walk.
type Counts struct {
	Directories int
	Files       int
}

// Total returns the number of printed entries.
func (counts Counts) Total() int {
	return counts.Directories + counts.Files
}

// IsHiddenName reports whether name starts with a dot followed by at least one more character.
func IsHiddenName(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
