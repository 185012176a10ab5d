package resolve

import (
	"fmt"
)

// OverrideError indicates that an override is not of the form key=value.
type OverrideError struct {
	Override string
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("malformed override %q: expected key=value", e.Override)
}

// StrictError indicates that strict mode rejected a config option.
// Err is a *menu.UnknownOptionError or a *menu.UnknownValueError.
type StrictError struct {
	// Source is where the option came from: "board" or "override"
	Source string

	Err error
}

func (e *StrictError) Error() string {
	return fmt.Sprintf("strict mode: %s option rejected: %v", e.Source, e.Err)
}

func (e *StrictError) Unwrap() error {
	return e.Err
}
