// Package enum provides a pflag.Value that only accepts one of a fixed set
// of options. The first option is the default.
package enum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// Flag is a pflag.Value restricted to a fixed set of options.
type Flag struct {
	options []string
	value   string
}

var _ pflag.Value = (*Flag)(nil)

// New creates a Flag defaulting to the first of options.
// It panics if no options are given.
func New(options ...string) *Flag {
	if len(options) == 0 {
		panic("enum: at least one option is required")
	}
	return &Flag{options: options, value: options[0]}
}

func (f *Flag) String() string {
	return f.value
}

// Set updates the value if it is one of the allowed options.
func (f *Flag) Set(value string) error {
	if !slices.Contains(f.options, value) {
		return fmt.Errorf("must be one of %s", strings.Join(f.options, ", "))
	}
	f.value = value
	return nil
}

func (f *Flag) Type() string {
	return "enum"
}

// Var registers a new enum flag with the given options on flagset.
func Var(flagset *pflag.FlagSet, name string, options []string, usage string) {
	VarP(flagset, name, "", options, usage)
}

// VarP is like Var but accepts a shorthand letter.
func VarP(flagset *pflag.FlagSet, name, shorthand string, options []string, usage string) {
	flagset.VarP(New(options...), name, shorthand, usage)
}

// Get returns the current value of the enum flag name.
func Get(flagset *pflag.FlagSet, name string) (string, error) {
	f := flagset.Lookup(name)
	if f == nil {
		return "", fmt.Errorf("flag %q not found", name)
	}
	v, ok := f.Value.(*Flag)
	if !ok {
		return "", fmt.Errorf("flag %q is not an enum flag", name)
	}
	return v.String(), nil
}
