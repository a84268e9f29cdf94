package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temirov/tree/internal/config"
	"github.com/temirov/tree/internal/output"
)

func TestResolveRunOptionsPrecedence(t *testing.T) {
	rootCommand := NewRootCommand(Dependencies{})
	flagSet := rootCommand.Flags()
	require.NoError(t, flagSet.Parse([]string{"--filelimit", "5", "-d"}))

	fileDepth := 4
	fileLimit := 50
	hidden := true
	fileConfiguration := config.TreeConfiguration{
		ShowHidden:    &hidden,
		MaxDepth:      &fileDepth,
		FileLimit:     &fileLimit,
		IgnorePattern: "*.log",
		PatternSyntax: "glob",
		Color:         "always",
	}
	values := flagValues{directoriesOnly: true, fileLimit: 5}

	resolved, err := resolveRunOptions(flagSet, values, fileConfiguration)

	require.NoError(t, err)
	assert.True(t, resolved.configuration.ShowHidden)
	assert.True(t, resolved.configuration.DirectoriesOnly)
	require.NotNil(t, resolved.configuration.MaxDepth)
	assert.Equal(t, 4, *resolved.configuration.MaxDepth)
	require.NotNil(t, resolved.configuration.FileLimit)
	assert.Equal(t, 5, *resolved.configuration.FileLimit)
	assert.Nil(t, resolved.configuration.MatchPattern)
	require.NotNil(t, resolved.configuration.IgnorePattern)
	assert.True(t, resolved.configuration.IgnorePattern.MatchString("debug.log"))
	assert.Equal(t, output.ColorModeAlways, resolved.colorMode)

	fileDepth = 9
	assert.Equal(t, 4, *resolved.configuration.MaxDepth)
}

func TestResolveRunOptionsDefaults(t *testing.T) {
	rootCommand := NewRootCommand(Dependencies{})

	resolved, err := resolveRunOptions(rootCommand.Flags(), flagValues{}, config.TreeConfiguration{})

	require.NoError(t, err)
	assert.Nil(t, resolved.configuration.MaxDepth)
	assert.Nil(t, resolved.configuration.FileLimit)
	assert.Nil(t, resolved.configuration.MatchPattern)
	assert.Nil(t, resolved.configuration.IgnorePattern)
	assert.Equal(t, output.ColorModeAuto, resolved.colorMode)
	assert.False(t, resolved.noReport)
	assert.False(t, resolved.copyToClipboard)
}
