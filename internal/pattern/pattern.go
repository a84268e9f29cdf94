// Package pattern compiles the file name patterns used by --pattern and --ignore.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Syntax selects how a pattern expression is interpreted.
type Syntax string

const (
	// SyntaxRegex interprets the expression as an unanchored regular expression.
	SyntaxRegex Syntax = "regex"
	// SyntaxGlob interprets the expression as one or more glob alternatives separated by '|'.
	SyntaxGlob  Syntax = "glob"

	globAlternativeSeparator = "|"

	errorInvalidExpressionFormat = "%w %q: %v"
	errorEmptyExpressionFormat   = "%w: empty expression"
	errorUnknownSyntaxFormat     = "unsupported pattern syntax %q"
)

// ErrInvalidPattern reports an expression that cannot be compiled.
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern matches bare file names.
type Pattern interface {
	MatchString(name string) bool
	String() string
}

// ParseSyntax converts a user-supplied syntax name into a Syntax.
// The empty string selects SyntaxRegex.
func ParseSyntax(value string) (Syntax, error) {
	switch Syntax(strings.ToLower(strings.TrimSpace(value))) {
	case "", SyntaxRegex:
		return SyntaxRegex, nil
	case SyntaxGlob:
		return SyntaxGlob, nil
	default:
		return "", fmt.Errorf(errorUnknownSyntaxFormat, value)
	}
}

// Compile builds a Pattern from expression using the requested syntax.
func Compile(expression string, syntax Syntax) (Pattern, error) {
	if expression == "" {
		return nil, fmt.Errorf(errorEmptyExpressionFormat, ErrInvalidPattern)
	}
	switch syntax {
	case "", SyntaxRegex:
		return compileRegex(expression)
	case SyntaxGlob:
		return compileGlob(expression)
	default:
		return nil, fmt.Errorf(errorUnknownSyntaxFormat, syntax)
	}
}

// MustCompile is like Compile but panics on error. Intended for tests and constants.
func MustCompile(expression string, syntax Syntax) Pattern {
	compiled, compileError := Compile(expression, syntax)
	if compileError != nil {
		panic(compileError)
	}
	return compiled
}

type regexPattern struct {
	expression *regexp.Regexp
}

func compileRegex(expression string) (Pattern, error) {
	compiledExpression, compileError := regexp.Compile(expression)
	if compileError != nil {
		return nil, fmt.Errorf(errorInvalidExpressionFormat, ErrInvalidPattern, expression, compileError)
	}
	return &regexPattern{expression: compiledExpression}, nil
}

func (pattern *regexPattern) MatchString(name string) bool {
	return pattern.expression.MatchString(name)
}

func (pattern *regexPattern) String() string {
	return pattern.expression.String()
}

type globPattern struct {
	source       string
	alternatives []string
}

func compileGlob(expression string) (Pattern, error) {
	var alternatives []string
	for _, alternative := range strings.Split(expression, globAlternativeSeparator) {
		trimmedAlternative := strings.TrimSpace(alternative)
		if trimmedAlternative == "" {
			continue
		}
		if !doublestar.ValidatePattern(trimmedAlternative) {
			return nil, fmt.Errorf(errorInvalidExpressionFormat, ErrInvalidPattern, expression, doublestar.ErrBadPattern)
		}
		alternatives = append(alternatives, trimmedAlternative)
	}
	if len(alternatives) == 0 {
		return nil, fmt.Errorf(errorEmptyExpressionFormat, ErrInvalidPattern)
	}
	return &globPattern{source: expression, alternatives: alternatives}, nil
}

func (pattern *globPattern) MatchString(name string) bool {
	for _, alternative := range pattern.alternatives {
		// alternatives were validated in compileGlob, so Match cannot fail here
		if matched, _ := doublestar.Match(alternative, name); matched {
			return true
		}
	}
	return false
}

func (pattern *globPattern) String() string {
	return pattern.source
}
