// Package utils provides logging, version lookup and shared constants.
package utils

const (
	// ApplicationName is the command name shown in usage and version output.
	ApplicationName = "tree"
	// GlobalConfigDirectoryName is the directory under the user's home that holds the global configuration.
	GlobalConfigDirectoryName = ".tree"
	// ConfigFileName is the global configuration file name.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the configuration file looked up in the working directory.
	LocalConfigFileName = ".tree.yaml"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"

	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal command errors.
	ApplicationExecutionFailedMessage = "tree failed"
)
