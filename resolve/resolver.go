package resolve

import (
	"fmt"
	"strings"

	"github.com/moffa90/go-fqbn/fqbn"
	"github.com/moffa90/go-fqbn/menu"
)

// Resolver computes the effective FQBN of a board from the FQBN a user typed,
// the board's configuration menus and command-line style overrides.
//
// Resolver is safe for concurrent use after initialization.
type Resolver struct {
	config Config
}

// New creates a new Resolver with the given options.
//
// Example:
//
//	r := resolve.New(
//	    resolve.WithLogger(slog.Default()),
//	    resolve.WithStrict(true),
//	)
func New(opts ...Option) *Resolver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Resolver{
		config: cfg,
	}
}

// Resolve performs the complete resolution sequence:
//  1. Parse base
//  2. Apply the selected value of every menu to the board (if menus are given)
//  3. Merge the options written in base over those defaults
//  4. Apply each key=value override in order
//  5. Limit the number of options (if MaxOptions is set)
//
// In strict mode, options from base and overrides must name a menu and one of
// its values. Without menus, strict overrides may only change options already
// present.
//
// Example:
//
//	opts, _ := menu.Parse("nano.yaml")
//	f, err := r.Resolve("arduino:avr:nano:clock=8MHz", opts, "cpu=atmega168")
func (r *Resolver) Resolve(base string, menus []fqbn.ConfigOption, overrides ...string) (*fqbn.FQBN, error) {
	// Phase 1: Parse
	user, err := fqbn.Parse(base)
	if err != nil {
		r.logError("invalid base FQBN", "fqbn", base, "error", err)
		return nil, fmt.Errorf("parse base: %w", err)
	}
	r.reportStep(PhaseParsed, user, false)

	result := user

	if len(menus) > 0 {
		if err := menu.Validate(menus); err != nil {
			return nil, fmt.Errorf("validate menus: %w", err)
		}

		if r.config.Strict {
			for _, o := range user.ConfigOptions() {
				if _, err := menu.Select(menus, o.Key, o.Value); err != nil {
					return nil, &StrictError{Source: "board", Err: err}
				}
			}
		}

		// Phase 2: Menu defaults
		board := user.Sanitize()
		defaults, err := board.WithConfigOptions(menus...)
		if err != nil {
			return nil, fmt.Errorf("apply menu defaults: %w", err)
		}
		r.reportStep(PhaseDefaults, defaults, defaults != board)

		// Phase 3: Options written in base
		result, err = defaults.WithFQBN(user.String())
		if err != nil {
			return nil, fmt.Errorf("apply board options: %w", err)
		}
		r.reportStep(PhaseBoardOptions, result, result != defaults)

		r.logDebug("menus applied",
			"menus", len(menus),
			"fqbn", result.String(),
		)
	}

	// Phase 4: Overrides
	if len(overrides) > 0 {
		before := result
		for _, override := range overrides {
			key, value, ok := strings.Cut(override, fqbn.ValueSeparator)
			if !ok {
				return nil, &OverrideError{Override: override}
			}

			if r.config.Strict && len(menus) > 0 {
				if _, err := menu.Select(menus, key, value); err != nil {
					return nil, &StrictError{Source: "override", Err: err}
				}
			}

			result, err = result.SetConfigOption(key, value, r.config.Strict)
			if err != nil {
				return nil, fmt.Errorf("override %q: %w", override, err)
			}

			r.logDebug("override applied", "key", key, "value", value)
		}
		r.reportStep(PhaseOverrides, result, result != before)
	}

	// Phase 5: Limit
	if r.config.MaxOptions > 0 {
		limited, err := result.LimitConfigOptions(r.config.MaxOptions)
		if err != nil {
			return nil, fmt.Errorf("limit options: %w", err)
		}
		r.reportStep(PhaseLimited, limited, limited != result)
		result = limited
	}

	r.logInfo("resolved FQBN",
		"base", base,
		"fqbn", result.String(),
		"options", result.NumConfigOptions(),
	)

	return result, nil
}

// reportStep calls the step callback if configured.
func (r *Resolver) reportStep(phase string, f *fqbn.FQBN, changed bool) {
	if r.config.StepCallback != nil {
		r.config.StepCallback(Step{Phase: phase, FQBN: f, Changed: changed})
	}
}

// logDebug logs a debug message if a logger is configured.
func (r *Resolver) logDebug(msg string, keysAndValues ...any) {
	if r.config.Logger != nil {
		r.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (r *Resolver) logInfo(msg string, keysAndValues ...any) {
	if r.config.Logger != nil {
		r.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (r *Resolver) logError(msg string, keysAndValues ...any) {
	if r.config.Logger != nil {
		r.config.Logger.Error(msg, keysAndValues...)
	}
}
