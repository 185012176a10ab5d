package resolve

import "github.com/moffa90/go-fqbn/fqbn"

// Resolution phases reported through StepCallback.
const (
	// PhaseParsed reports the parsed base FQBN
	PhaseParsed = "parsed"

	// PhaseDefaults reports the board with the default menu selections
	PhaseDefaults = "defaults"

	// PhaseBoardOptions reports the defaults merged with the options of the base FQBN
	PhaseBoardOptions = "board-options"

	// PhaseOverrides reports the result after the key=value overrides
	PhaseOverrides = "overrides"

	// PhaseLimited reports the result after the option limit
	PhaseLimited = "limited"
)

// Step contains the intermediate result of one resolution phase.
// Passed to StepCallback during Resolve.
type Step struct {
	// Phase is one of the Phase constants
	Phase string

	// FQBN is the value after the phase
	FQBN *fqbn.FQBN

	// Changed reports whether the phase produced a different FQBN
	Changed bool
}

// StepCallback is called after each resolution phase that runs.
//
// Example:
//
//	r := resolve.New(
//	    resolve.WithStepCallback(func(s resolve.Step) {
//	        fmt.Printf("[%s] %s\n", s.Phase, s.FQBN)
//	    }),
//	)
type StepCallback func(Step)

// Logger is an optional logging interface that can be provided to the resolver.
// *slog.Logger satisfies it.
//
// Example with log/slog:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	r := resolve.New(resolve.WithLogger(logger))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...any)

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...any)

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...any)
}
