package menu

import (
	"fmt"
	"strings"
)

// UnknownOptionError indicates that a board has no menu with the given key.
type UnknownOptionError struct {
	Option string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown config option %q", e.Option)
}

// UnknownValueError indicates that a value is not a candidate of a menu.
type UnknownValueError struct {
	Option  string
	Value   string
	Allowed []string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown value %q for config option %q: allowed values are %s",
		e.Value, e.Option, strings.Join(e.Allowed, ", "))
}
