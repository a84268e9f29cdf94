// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/tree/internal/commands"
	"github.com/temirov/tree/internal/config"
	"github.com/temirov/tree/internal/output"
	"github.com/temirov/tree/internal/services/clipboard"
	"github.com/temirov/tree/internal/utils"
)

const (
	allFlagName           = "all"
	dirsOnlyFlagName      = "dirs-only"
	fullPathFlagName      = "full-path"
	levelFlagName         = "level"
	fileLimitFlagName     = "filelimit"
	patternFlagName       = "pattern"
	ignoreFlagName        = "ignore"
	patternSyntaxFlagName = "pattern-syntax"
	colorFlagName         = "color"
	noReportFlagName      = "noreport"
	copyFlagName          = "copy"
	configFlagName        = "config"
	globalFlagName        = "global"
	forceFlagName         = "force"

	allFlagShorthand      = "a"
	dirsOnlyFlagShorthand = "d"
	fullPathFlagShorthand = "f"
	levelFlagShorthand    = "L"
	patternFlagShorthand  = "P"
	ignoreFlagShorthand   = "I"

	allFlagDescription           = "list hidden entries whose names start with a dot"
	dirsOnlyFlagDescription      = "list directories only"
	fullPathFlagDescription      = "print the path of each entry instead of its name"
	levelFlagDescription         = "descend at most this many directory levels"
	fileLimitFlagDescription     = "do not open directories with more than this many entries"
	patternFlagDescription       = "list only files whose names match the pattern"
	ignoreFlagDescription        = "do not list files whose names match the pattern"
	patternSyntaxFlagDescription = "pattern syntax: regex or glob"
	colorFlagDescription         = "colorize output: auto, always or never"
	noReportFlagDescription      = "omit the directory and file count at the end"
	copyFlagDescription          = "also copy the listing to the system clipboard"
	configFlagDescription        = "configuration file (default ./" + utils.LocalConfigFileName + ")"
	globalFlagDescription        = "write the configuration under the home directory"
	forceFlagDescription         = "overwrite an existing configuration file"

	defaultPath          = "."
	rootUse              = utils.ApplicationName + " [paths...]"
	rootShortDescription = "list directory contents as a tree"
	rootLongDescription  = `tree lists the contents of directories as an indented, colored tree.
Directories are cyan and hidden files magenta. Filters hide dot entries,
non-directories, or files whose names do or do not match a pattern. Use
--level and --filelimit to bound how much of the hierarchy is opened.`
	rootUsageExample = `  # Two levels of the current directory, hidden entries included
  tree -a -L 2

  # Go sources except tests, as glob patterns
  tree --pattern-syntax glob -P '*.go' -I '*_test.go' ./internal`
	initUse              = "init"
	initShortDescription = "write a default configuration file"
	versionTemplate      = utils.ApplicationName + " version: {{.Version}}\n"
	configWrittenFormat  = "configuration written to %s\n"

	errorWorkingDirectoryFormat = "unable to determine working directory: %w"
	errorPathMissingFormat      = "path '%s' does not exist"
	errorStatFormat             = "stat failed for '%s': %w"
	errorNotDirectoryFormat     = "'%s' is not a directory"
	errorWalkFormat             = "listing %s: %w"
	warningClipboardMessage     = "Warning: unable to copy listing to clipboard"
)

// Dependencies carries the process-level collaborators of the command tree.
type Dependencies struct {
	Stdout io.Writer
	// ColorDestination is inspected to decide whether --color=auto emits escape sequences.
	ColorDestination *os.File
	Clipboard        clipboard.Copier
	Logger           *zap.Logger
}

// Execute runs the tree application against the process arguments.
func Execute(logger *zap.Logger) error {
	rootCommand := NewRootCommand(Dependencies{
		Stdout:           os.Stdout,
		ColorDestination: os.Stdout,
		Clipboard:        clipboard.NewService(),
		Logger:           logger,
	})
	rootCommand.SetArgs(attachSwitchLiterals(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	var values flagValues

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Version:       utils.GetApplicationVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if len(arguments) == 0 {
				arguments = []string{defaultPath}
			}
			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(errorWorkingDirectoryFormat, workingDirectoryError)
			}
			applicationConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: values.configPath,
			})
			if loadError != nil {
				return loadError
			}
			options, resolveError := resolveRunOptions(command.Flags(), values, applicationConfiguration.Tree)
			if resolveError != nil {
				return resolveError
			}
			return runTree(dependencies, options, arguments)
		},
	}
	rootCommand.SetOut(dependencies.Stdout)
	rootCommand.SetVersionTemplate(versionTemplate)

	flagSet := rootCommand.Flags()
	registerSwitches(flagSet,
		switchDefinition{target: &values.showHidden, name: allFlagName, shorthand: allFlagShorthand, usage: allFlagDescription},
		switchDefinition{target: &values.directoriesOnly, name: dirsOnlyFlagName, shorthand: dirsOnlyFlagShorthand, usage: dirsOnlyFlagDescription},
		switchDefinition{target: &values.fullPaths, name: fullPathFlagName, shorthand: fullPathFlagShorthand, usage: fullPathFlagDescription},
		switchDefinition{target: &values.noReport, name: noReportFlagName, usage: noReportFlagDescription},
		switchDefinition{target: &values.copyToClipboard, name: copyFlagName, usage: copyFlagDescription},
	)
	flagSet.IntVarP(&values.maxDepth, levelFlagName, levelFlagShorthand, 0, levelFlagDescription)
	flagSet.IntVar(&values.fileLimit, fileLimitFlagName, 0, fileLimitFlagDescription)
	flagSet.StringVarP(&values.matchPattern, patternFlagName, patternFlagShorthand, "", patternFlagDescription)
	flagSet.StringVarP(&values.ignorePattern, ignoreFlagName, ignoreFlagShorthand, "", ignoreFlagDescription)
	flagSet.StringVar(&values.patternSyntax, patternSyntaxFlagName, "", patternSyntaxFlagDescription)
	flagSet.StringVar(&values.colorMode, colorFlagName, "", colorFlagDescription)
	flagSet.StringVar(&values.configPath, configFlagName, "", configFlagDescription)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(command.OutOrStdout(), configWrittenFormat, writtenPath)
			return nil
		},
	}
	registerSwitches(initCommand.Flags(),
		switchDefinition{target: &global, name: globalFlagName, usage: globalFlagDescription},
		switchDefinition{target: &force, name: forceFlagName, usage: forceFlagDescription},
	)
	return initCommand
}

// runTree validates every root, then lists each one below its cyan name and
// finishes with the combined summary line.
func runTree(dependencies Dependencies, options runOptions, rootPaths []string) error {
	if validationError := validateRootPaths(rootPaths); validationError != nil {
		return validationError
	}

	terminalSink := output.NewTerminalSink(dependencies.Stdout, output.ShouldColor(options.colorMode, dependencies.ColorDestination))
	var sink output.Sink = terminalSink
	var clipboardRecorder *output.RecorderSink
	if options.copyToClipboard && dependencies.Clipboard != nil {
		clipboardRecorder = output.NewRecorderSink()
		sink = output.NewMultiSink(terminalSink, clipboardRecorder)
	}

	var counts commands.Counts
	walkError := walkRoots(sink, &options.configuration, rootPaths, &counts)
	if walkError == nil && !options.noReport {
		walkError = writeSummary(sink, counts)
	}
	if flushError := terminalSink.Flush(); flushError != nil && walkError == nil {
		walkError = flushError
	}
	if walkError != nil {
		return walkError
	}

	if clipboardRecorder != nil {
		if copyError := dependencies.Clipboard.Copy(clipboardRecorder.Text()); copyError != nil {
			dependencies.Logger.Warn(warningClipboardMessage, zap.Error(copyError))
		}
	}
	return nil
}

func walkRoots(sink output.Sink, configuration *commands.Configuration, rootPaths []string, counts *commands.Counts) error {
	for _, rootPath := range rootPaths {
		if writeError := sink.WriteColored(rootPath, output.ColorCyan); writeError != nil {
			return writeError
		}
		if walkError := commands.Walk(sink, configuration, rootPath, "", commands.RootDepth, counts); walkError != nil {
			return fmt.Errorf(errorWalkFormat, rootPath, walkError)
		}
	}
	return nil
}

func writeSummary(sink output.Sink, counts commands.Counts) error {
	if resetError := sink.Reset(); resetError != nil {
		return resetError
	}
	return sink.WriteText(output.FormatSummaryLine(counts.Directories, counts.Files) + "\n")
}

// validateRootPaths checks that every root exists and is a directory before anything is printed.
func validateRootPaths(rootPaths []string) error {
	for _, rootPath := range rootPaths {
		info, fileStatusError := os.Stat(rootPath)
		if fileStatusError != nil {
			if os.IsNotExist(fileStatusError) {
				return fmt.Errorf(errorPathMissingFormat, rootPath)
			}
			return fmt.Errorf(errorStatFormat, rootPath, fileStatusError)
		}
		if !info.IsDir() {
			return fmt.Errorf(errorNotDirectoryFormat, rootPath)
		}
	}
	return nil
}
