package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	switchTypeName       = "bool"
	switchOnLiteral      = "true"
	argumentTerminator   = "--"
	longSwitchPrefix     = "--"
	shortSwitchPrefix    = "-"
	switchValueSeparator = "="

	errorSwitchLiteralFormat = "invalid boolean value %q for --%s; accepted values: true, false, yes, no, on, off, 1, 0"
)

var switchLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// parseSwitchLiteral reports the value of a yes/no style literal. An empty literal means on.
func parseSwitchLiteral(literal string) (bool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(literal))
	if normalized == "" {
		return true, true
	}
	value, known := switchLiterals[normalized]
	return value, known
}

// switchValue backs listing switches such as --all or --dirs-only.
type switchValue struct {
	target *bool
	name   string
}

func (value *switchValue) Set(input string) error {
	parsed, known := parseSwitchLiteral(input)
	if !known {
		return fmt.Errorf(errorSwitchLiteralFormat, input, value.name)
	}
	*value.target = parsed
	return nil
}

func (value *switchValue) String() string {
	if value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *switchValue) Type() string {
	return switchTypeName
}

// switchDefinition declares one off-by-default switch of a command.
type switchDefinition struct {
	target    *bool
	name      string
	shorthand string
	usage     string
}

// registerSwitches adds every definition to flagSet. A bare switch turns it on;
// "--all=no" or "-a=no" accepts any literal from switchLiterals.
func registerSwitches(flagSet *pflag.FlagSet, definitions ...switchDefinition) {
	for _, definition := range definitions {
		*definition.target = false
		flagSet.VarP(&switchValue{target: definition.target, name: definition.name}, definition.name, definition.shorthand, definition.usage)
		registered := flagSet.Lookup(definition.name)
		registered.DefValue = strconv.FormatBool(false)
		registered.NoOptDefVal = switchOnLiteral
	}
}

// attachSwitchLiterals joins a switch and a following literal, so "tree -a yes src"
// reaches pflag as "-a=yes src" instead of treating "yes" as a root path.
// Arguments after "--" are passed through untouched.
func attachSwitchLiterals(command *cobra.Command, arguments []string) []string {
	spellings := map[string]struct{}{}
	collectSwitchSpellings(command, spellings)

	joined := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		argument := arguments[index]
		if argument == argumentTerminator {
			return append(joined, arguments[index:]...)
		}
		if _, isSwitch := spellings[argument]; isSwitch && index+1 < len(arguments) {
			literal := arguments[index+1]
			if _, known := switchLiterals[strings.ToLower(strings.TrimSpace(literal))]; known {
				joined = append(joined, argument+switchValueSeparator+literal)
				index++
				continue
			}
		}
		joined = append(joined, argument)
	}
	return joined
}

// collectSwitchSpellings records "--name" and "-x" for every boolean flag of command and its subcommands.
func collectSwitchSpellings(command *cobra.Command, spellings map[string]struct{}) {
	record := func(flag *pflag.Flag) {
		if flag.Value.Type() != switchTypeName {
			return
		}
		spellings[longSwitchPrefix+flag.Name] = struct{}{}
		if flag.Shorthand != "" {
			spellings[shortSwitchPrefix+flag.Shorthand] = struct{}{}
		}
	}
	command.PersistentFlags().VisitAll(record)
	command.Flags().VisitAll(record)
	for _, child := range command.Commands() {
		collectSwitchSpellings(child, spellings)
	}
}
