package resolve

// Config holds the resolver configuration.
type Config struct {
	// StepCallback is called after each resolution phase (optional)
	StepCallback StepCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// Strict rejects options and overrides that the board menus do not define.
	// Without menus, overrides may only change options already present.
	Strict bool

	// MaxOptions caps the number of config options of the result.
	// Zero means no limit.
	MaxOptions int
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{}
}

// Option is a functional option for configuring the Resolver.
type Option func(*Config)

// WithStepCallback sets a callback function to observe each resolution phase.
func WithStepCallback(callback StepCallback) Option {
	return func(c *Config) {
		c.StepCallback = callback
	}
}

// WithLogger sets a logger for the resolver operations.
//
// Example:
//
//	r := resolve.New(resolve.WithLogger(slog.Default()))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStrict enables or disables strict mode.
// Default is false.
//
// Example:
//
//	r := resolve.New(resolve.WithStrict(true))
func WithStrict(strict bool) Option {
	return func(c *Config) {
		c.Strict = strict
	}
}

// WithMaxOptions limits the number of config options of the result.
// Zero disables the limit; negative values are ignored.
//
// Example:
//
//	r := resolve.New(resolve.WithMaxOptions(2))
func WithMaxOptions(maxOptions int) Option {
	return func(c *Config) {
		if maxOptions >= 0 {
			c.MaxOptions = maxOptions
		}
	}
}
