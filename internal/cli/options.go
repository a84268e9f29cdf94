package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/temirov/tree/internal/commands"
	"github.com/temirov/tree/internal/config"
	"github.com/temirov/tree/internal/output"
	"github.com/temirov/tree/internal/pattern"
)

const (
	errorNegativeValueFormat = "--%s must not be negative, got %d"
	errorPatternFlagFormat   = "--%s: %w"
)

// flagValues holds raw command line values before they are merged with configuration files.
type flagValues struct {
	showHidden      bool
	directoriesOnly bool
	fullPaths       bool
	maxDepth        int
	fileLimit       int
	matchPattern    string
	ignorePattern   string
	patternSyntax   string
	colorMode       string
	noReport        bool
	copyToClipboard bool
	configPath      string
}

// runOptions is the fully resolved input for one invocation.
type runOptions struct {
	configuration   commands.Configuration
	colorMode       output.ColorMode
	noReport        bool
	copyToClipboard bool
}

// resolveRunOptions merges flags over file configuration. A flag wins only when
// it was set on the command line; otherwise the file value, then the default, applies.
// Patterns are compiled here so syntax errors surface before any output.
func resolveRunOptions(flagSet *pflag.FlagSet, values flagValues, fileConfiguration config.TreeConfiguration) (runOptions, error) {
	var resolved runOptions

	resolved.configuration.ShowHidden = resolveBool(flagSet, allFlagName, values.showHidden, fileConfiguration.ShowHidden)
	resolved.configuration.DirectoriesOnly = resolveBool(flagSet, dirsOnlyFlagName, values.directoriesOnly, fileConfiguration.DirectoriesOnly)
	resolved.configuration.FullPaths = resolveBool(flagSet, fullPathFlagName, values.fullPaths, fileConfiguration.FullPaths)
	resolved.noReport = resolveBool(flagSet, noReportFlagName, values.noReport, fileConfiguration.NoReport)
	resolved.copyToClipboard = resolveBool(flagSet, copyFlagName, values.copyToClipboard, fileConfiguration.Clipboard)

	maxDepth, depthError := resolveLimit(flagSet, levelFlagName, values.maxDepth, fileConfiguration.MaxDepth)
	if depthError != nil {
		return runOptions{}, depthError
	}
	resolved.configuration.MaxDepth = maxDepth

	fileLimit, limitError := resolveLimit(flagSet, fileLimitFlagName, values.fileLimit, fileConfiguration.FileLimit)
	if limitError != nil {
		return runOptions{}, limitError
	}
	resolved.configuration.FileLimit = fileLimit

	syntaxName := resolveString(flagSet, patternSyntaxFlagName, values.patternSyntax, fileConfiguration.PatternSyntax)
	syntax, syntaxError := pattern.ParseSyntax(syntaxName)
	if syntaxError != nil {
		return runOptions{}, syntaxError
	}

	matchExpression := resolveString(flagSet, patternFlagName, values.matchPattern, fileConfiguration.MatchPattern)
	if matchExpression != "" {
		compiled, compileError := pattern.Compile(matchExpression, syntax)
		if compileError != nil {
			return runOptions{}, fmt.Errorf(errorPatternFlagFormat, patternFlagName, compileError)
		}
		resolved.configuration.MatchPattern = compiled
	}

	ignoreExpression := resolveString(flagSet, ignoreFlagName, values.ignorePattern, fileConfiguration.IgnorePattern)
	if ignoreExpression != "" {
		compiled, compileError := pattern.Compile(ignoreExpression, syntax)
		if compileError != nil {
			return runOptions{}, fmt.Errorf(errorPatternFlagFormat, ignoreFlagName, compileError)
		}
		resolved.configuration.IgnorePattern = compiled
	}

	colorMode, colorError := output.ParseColorMode(resolveString(flagSet, colorFlagName, values.colorMode, fileConfiguration.Color))
	if colorError != nil {
		return runOptions{}, colorError
	}
	resolved.colorMode = colorMode

	return resolved, nil
}

func resolveBool(flagSet *pflag.FlagSet, name string, flagValue bool, fileValue *bool) bool {
	if flagSet.Changed(name) || fileValue == nil {
		return flagValue
	}
	return *fileValue
}

func resolveString(flagSet *pflag.FlagSet, name string, flagValue string, fileValue string) string {
	if flagSet.Changed(name) || fileValue == "" {
		return flagValue
	}
	return fileValue
}

func resolveLimit(flagSet *pflag.FlagSet, name string, flagValue int, fileValue *int) (*int, error) {
	var limit *int
	if flagSet.Changed(name) {
		limit = &flagValue
	} else if fileValue != nil {
		fileLimit := *fileValue
		limit = &fileLimit
	}
	if limit != nil && *limit < 0 {
		return nil, fmt.Errorf(errorNegativeValueFormat, name, *limit)
	}
	return limit, nil
}
