package fqbn

import (
	"errors"
	"fmt"
)

// ErrNegativeLimit is returned by LimitConfigOptions when the limit is below zero.
var ErrNegativeLimit = errors.New("max options must not be negative")

// InvalidFQBNError indicates that a string is not a well-formed FQBN.
type InvalidFQBNError struct {
	// FQBN is the offending raw string
	FQBN string

	// Reason describes what is wrong with it
	Reason string
}

func (e *InvalidFQBNError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid FQBN: %q", e.FQBN)
	}
	return fmt.Sprintf("invalid FQBN %q: %s", e.FQBN, e.Reason)
}

// ConfigOptionError indicates that the configuration options of an FQBN are
// invalid, or that an update of them could not be applied.
//
// It is a refinement of InvalidFQBNError: errors.As with an *InvalidFQBNError
// target matches a ConfigOptionError too.
type ConfigOptionError struct {
	// FQBN is the raw string the options belong to
	FQBN string

	// Detail is a human-readable description of the problem
	Detail string
}

func (e *ConfigOptionError) Error() string {
	return fmt.Sprintf("invalid config options for FQBN %q: %s", e.FQBN, e.Detail)
}

// Unwrap returns the InvalidFQBNError this error refines.
func (e *ConfigOptionError) Unwrap() error {
	return &InvalidFQBNError{FQBN: e.FQBN, Reason: e.Detail}
}

// IsInvalid returns true if err is, or wraps, an InvalidFQBNError or a ConfigOptionError.
func IsInvalid(err error) bool {
	var target *InvalidFQBNError
	return errors.As(err, &target)
}

// IsConfigOption returns true if err is, or wraps, a ConfigOptionError.
func IsConfigOption(err error) bool {
	var target *ConfigOptionError
	return errors.As(err, &target)
}

func invalid(raw, format string, args ...any) error {
	return &InvalidFQBNError{FQBN: raw, Reason: fmt.Sprintf(format, args...)}
}

func configError(raw, format string, args ...any) error {
	return &ConfigOptionError{FQBN: raw, Detail: fmt.Sprintf(format, args...)}
}
