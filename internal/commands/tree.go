// Package commands contains the directory walking logic behind the tree command.
package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/temirov/tree/internal/output"
)

const (
	// RootDepth is the depth passed to Walk for an invocation root.
	RootDepth = 1

	branchConnector      = "├── "
	terminalConnector    = "└── "
	continuingIndent     = "│   "
	finishedIndent       = "    "
	lineBreak            = "\n"
	fileLimitNoticeStart = " ["
	fileLimitNoticeEnd   = " entries exceeds filelimit, not opening dir]\n"

	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorEntryNameFormat is used for names that are not valid UTF-8.
	errorEntryNameFormat = "%w: %q in %s"
)

// ErrNonRepresentableName reports a file name that is not valid UTF-8 text.
var ErrNonRepresentableName = errors.New("file name is not valid UTF-8")

type directoryEntry struct {
	name        string
	path        string
	isDirectory bool
}

// Walk prints the children of rootPath below the name the caller already wrote,
// recursing depth first into subdirectories. The caller passes RootDepth for
// the invocation root. Every printed entry increments counts exactly once.
func Walk(sink output.Sink, configuration *Configuration, rootPath string, prefix string, currentDepth int, counts *Counts) error {
	if resetError := sink.Reset(); resetError != nil {
		return resetError
	}

	if configuration.MaxDepth != nil && currentDepth > *configuration.MaxDepth {
		return sink.WriteText(lineBreak)
	}

	entries, listError := listEntries(configuration, rootPath)
	if listError != nil {
		return listError
	}

	if configuration.FileLimit != nil && len(entries) > *configuration.FileLimit {
		return sink.WriteText(fileLimitNoticeStart + strconv.Itoa(len(entries)) + fileLimitNoticeEnd)
	}

	if writeError := sink.WriteText(lineBreak); writeError != nil {
		return writeError
	}

	sort.Slice(entries, func(left, right int) bool {
		return entries[left].name < entries[right].name
	})

	remaining := len(entries)
	for _, entry := range entries {
		remaining--
		isLast := remaining == 0

		connector := branchConnector
		childPrefix := prefix + continuingIndent
		if isLast {
			connector = terminalConnector
			childPrefix = prefix + finishedIndent
		}

		displayText := entry.name
		if configuration.FullPaths {
			displayText = entry.path
		}

		if writeError := sink.WriteText(prefix + connector); writeError != nil {
			return writeError
		}

		if entry.isDirectory {
			counts.Directories++
			if writeError := sink.WriteColored(displayText, output.ColorCyan); writeError != nil {
				return writeError
			}
			if walkError := Walk(sink, configuration, entry.path, childPrefix, currentDepth+1, counts); walkError != nil {
				return walkError
			}
			continue
		}

		counts.Files++
		if writeError := writeFileName(sink, entry.name, displayText); writeError != nil {
			return writeError
		}
	}
	return nil
}

func writeFileName(sink output.Sink, name string, displayText string) error {
	var writeError error
	if IsHiddenName(name) {
		writeError = sink.WriteColored(displayText+lineBreak, output.ColorMagenta)
	} else {
		writeError = sink.WriteText(displayText + lineBreak)
	}
	if writeError != nil {
		return writeError
	}
	return sink.Reset()
}

// listEntries reads directoryPath and applies the hidden, directories-only and
// name pattern filters in that order. The result is unsorted.
func listEntries(configuration *Configuration, directoryPath string) ([]directoryEntry, error) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, directoryPath, readDirectoryError)
	}

	entries := make([]directoryEntry, 0, len(directoryEntries))
	for _, fileSystemEntry := range directoryEntries {
		entryName := fileSystemEntry.Name()
		if !configuration.ShowHidden && IsHiddenName(entryName) {
			continue
		}

		entryPath := joinEntryPath(directoryPath, entryName)
		isDirectory := resolvesToDirectory(fileSystemEntry, entryPath)
		if configuration.DirectoriesOnly && !isDirectory {
			continue
		}
		// names are only validated once they are going to be matched or printed
		if !utf8.ValidString(entryName) {
			return nil, fmt.Errorf(errorEntryNameFormat, ErrNonRepresentableName, entryName, directoryPath)
		}
		if !isDirectory && !matchesNamePatterns(configuration, entryName) {
			continue
		}

		entries = append(entries, directoryEntry{
			name:        entryName,
			path:        entryPath,
			isDirectory: isDirectory,
		})
	}
	return entries, nil
}

// joinEntryPath appends name to directoryPath without cleaning it, so a root
// given as "./src" prints full paths like "./src/main.go".
func joinEntryPath(directoryPath string, name string) string {
	if strings.HasSuffix(directoryPath, string(filepath.Separator)) {
		return directoryPath + name
	}
	return directoryPath + string(filepath.Separator) + name
}

// resolvesToDirectory follows symbolic links so that a link to a directory is
// listed and descended like one. A link whose target cannot be inspected, such
// as a dangling or self-referential link, is listed as a file.
func resolvesToDirectory(fileSystemEntry os.DirEntry, entryPath string) bool {
	if fileSystemEntry.Type()&os.ModeSymlink == 0 {
		return fileSystemEntry.IsDir()
	}
	targetInfo, statError := os.Stat(entryPath)
	if statError != nil {
		return false
	}
	return targetInfo.IsDir()
}

func matchesNamePatterns(configuration *Configuration, name string) bool {
	if configuration.MatchPattern != nil && !configuration.MatchPattern.MatchString(name) {
		return false
	}
	if configuration.IgnorePattern != nil && configuration.IgnorePattern.MatchString(name) {
		return false
	}
	return true
}
