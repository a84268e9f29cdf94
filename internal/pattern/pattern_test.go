package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temirov/tree/internal/pattern"
)

func TestCompileMatchesNames(t *testing.T) {
	testCases := []struct {
		name       string
		expression string
		syntax     pattern.Syntax
		matches    []string
		rejects    []string
	}{
		{
			name:       "regex_is_unanchored",
			expression: `\.go`,
			syntax:     pattern.SyntaxRegex,
			matches:    []string{"main.go", "main.gopher", "x.go.bak"},
			rejects:    []string{"main.rs", "go"},
		},
		{
			name:       "regex_anchored_by_author",
			expression: `^test_.*\.py$`,
			syntax:     pattern.SyntaxRegex,
			matches:    []string{"test_walk.py"},
			rejects:    []string{"walk_test.py", "test_walk.pyc"},
		},
		{
			name:       "default_syntax_is_regex",
			expression: `^a+$`,
			syntax:     "",
			matches:    []string{"aaa"},
			rejects:    []string{"ab"},
		},
		{
			name:       "glob_single",
			expression: "*.md",
			syntax:     pattern.SyntaxGlob,
			matches:    []string{"README.md", ".hidden.md"},
			rejects:    []string{"README.markdown", "notes.md.txt"},
		},
		{
			name:       "glob_alternatives",
			expression: "*.go|Makefile",
			syntax:     pattern.SyntaxGlob,
			matches:    []string{"tree.go", "Makefile"},
			rejects:    []string{"makefile", "tree.rs"},
		},
		{
			name:       "glob_braces",
			expression: "*.{yaml,yml}",
			syntax:     pattern.SyntaxGlob,
			matches:    []string{"config.yaml", "ci.yml"},
			rejects:    []string{"config.json"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			compiled, compileError := pattern.Compile(testCase.expression, testCase.syntax)
			require.NoError(t, compileError)
			assert.Equal(t, testCase.expression, compiled.String())
			for _, name := range testCase.matches {
				assert.Truef(t, compiled.MatchString(name), "expected %q to match %q", testCase.expression, name)
			}
			for _, name := range testCase.rejects {
				assert.Falsef(t, compiled.MatchString(name), "expected %q not to match %q", testCase.expression, name)
			}
		})
	}
}

func TestCompileRejectsInvalidExpressions(t *testing.T) {
	testCases := []struct {
		name       string
		expression string
		syntax     pattern.Syntax
	}{
		{name: "empty", expression: "", syntax: pattern.SyntaxRegex},
		{name: "unbalanced_group", expression: "(abc", syntax: pattern.SyntaxRegex},
		{name: "unbalanced_class", expression: "[abc", syntax: pattern.SyntaxGlob},
		{name: "only_separators", expression: "||", syntax: pattern.SyntaxGlob},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			compiled, compileError := pattern.Compile(testCase.expression, testCase.syntax)
			require.Error(t, compileError)
			assert.ErrorIs(t, compileError, pattern.ErrInvalidPattern)
			assert.Nil(t, compiled)
		})
	}
}

func TestParseSyntax(t *testing.T) {
	syntax, parseError := pattern.ParseSyntax(" GLOB ")
	require.NoError(t, parseError)
	assert.Equal(t, pattern.SyntaxGlob, syntax)

	syntax, parseError = pattern.ParseSyntax("")
	require.NoError(t, parseError)
	assert.Equal(t, pattern.SyntaxRegex, syntax)

	_, parseError = pattern.ParseSyntax("pcre")
	assert.Error(t, parseError)
}
