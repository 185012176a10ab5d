// Package resolve computes the effective FQBN of a board for a host tool.
//
// # Overview
//
// A tool that compiles or uploads for a board combines several inputs:
//   - The FQBN the user typed, possibly with some config options
//   - The board's configuration menus and their default selections
//   - Overrides given on the command line as key=value pairs
//
// This package runs that sequence on top of the fqbn and menu packages:
//   - Applying the default selection of every menu
//   - Merging the options written in the user's FQBN over the defaults
//   - Applying the overrides in order
//   - Limiting the number of options
//
// # Basic Usage
//
//	opts, err := menu.Parse("nano.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := resolve.New()
//	f, err := r.Resolve("arduino:avr:nano:clock=8MHz", opts, "cpu=atmega168")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f) // arduino:avr:nano:cpu=atmega168,clock=8MHz
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	r := resolve.New(
//	    resolve.WithLogger(slog.Default()),
//	    resolve.WithStrict(true),
//	    resolve.WithMaxOptions(4),
//	    resolve.WithStepCallback(func(s resolve.Step) {
//	        fmt.Printf("[%s] %s\n", s.Phase, s.FQBN)
//	    }),
//	)
//
// # Error Handling
//
// The package provides structured error types:
//   - OverrideError: an override is not of the form key=value
//   - StrictError: strict mode rejected an option (wraps menu.UnknownOptionError
//     or menu.UnknownValueError)
//
// Errors from the fqbn package are wrapped with the failing phase and still
// match fqbn.IsInvalid.
package resolve
