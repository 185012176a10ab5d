package fqbn

// WithConfigOptions merges the selected value of each descriptor into the
// config options of f.
//
// Keys already present keep their position and take the selected value. New
// keys are appended in descriptor order. If nothing changes, f itself is
// returned. Every descriptor must have exactly one selected value, and a key
// may appear only once per call. Keys and values are checked with ValidKey and
// ValidValue before anything is merged.
//
// Example:
//
//	f := fqbn.MustParse("arduino:avr:nano:cpu=atmega328")
//	f, err := f.WithConfigOptions(fqbn.NewConfigOption("clock", "16MHz"))
//	// arduino:avr:nano:cpu=atmega328,clock=16MHz
func (f *FQBN) WithConfigOptions(opts ...ConfigOption) (*FQBN, error) {
	if len(opts) == 0 {
		return f, nil
	}

	resolved := make([]Option, 0, len(opts))
	for _, opt := range opts {
		value, count := opt.SelectedValue()
		switch {
		case count == 0:
			return nil, configError(f.String(), "no selected value for config option %q", opt.Option)
		case count > 1:
			return nil, configError(f.String(), "multiple selected values for config option %q", opt.Option)
		}
		if !ValidKey(opt.Option) {
			return nil, configError(f.String(), "invalid config option key %q", opt.Option)
		}
		if !ValidValue(value) {
			return nil, configError(f.String(), "invalid config option value %q for key %q", value, opt.Option)
		}

		// Presence of the key is what conflicts, whatever its value.
		if i := indexOf(resolved, opt.Option); i >= 0 {
			return nil, configError(f.String(), "duplicate config options %q: %q and %q",
				opt.Option, resolved[i].Value, value)
		}
		resolved = append(resolved, Option{Key: opt.Option, Value: value})
	}

	merged := make([]Option, len(f.options), len(f.options)+len(resolved))
	copy(merged, f.options)

	changed := false
	for _, o := range resolved {
		if i := indexOf(merged, o.Key); i >= 0 {
			if merged[i].Value != o.Value {
				merged[i].Value = o.Value
				changed = true
			}
			continue
		}
		merged = append(merged, o)
		changed = true
	}

	if !changed {
		return f, nil
	}

	return Parse(format(f.vendor, f.arch, f.boardID, merged))
}

// SetConfigOption sets the config option key to value.
//
// In strict mode the key must already be present in f; otherwise the option
// is appended when missing. If the option already has value, f is returned.
func (f *FQBN) SetConfigOption(key, value string, strict bool) (*FQBN, error) {
	if strict {
		if _, ok := f.ConfigOption(key); !ok {
			return nil, configError(f.String(), "config option %q is not present", key)
		}
	}
	return f.WithConfigOptions(NewConfigOption(key, value))
}

// WithFQBN merges the config options of other into f.
//
// Both FQBNs must name the same board. Options of f that other does not carry
// are kept unchanged; options of other are merged in the order other lists them.
//
// Example:
//
//	f := fqbn.MustParse("arduino:avr:nano:cpu=atmega328")
//	f, err := f.WithFQBN("arduino:avr:nano:cpu=atmega168,clock=8MHz")
//	// arduino:avr:nano:cpu=atmega168,clock=8MHz
func (f *FQBN) WithFQBN(other string) (*FQBN, error) {
	o, err := Parse(other)
	if err != nil {
		return nil, err
	}

	if !f.Sanitize().Equal(o.Sanitize()) {
		return nil, configError(f.String(), "cannot merge options of %q: board mismatch", o.String())
	}

	opts := make([]ConfigOption, 0, len(o.options))
	for _, option := range o.options {
		opts = append(opts, NewConfigOption(option.Key, option.Value))
	}
	return f.WithConfigOptions(opts...)
}

// Sanitize returns f without any config option.
// If f has no config options, f itself is returned.
func (f *FQBN) Sanitize() *FQBN {
	if f.options == nil {
		return f
	}
	return &FQBN{
		vendor:  f.vendor,
		arch:    f.arch,
		boardID: f.boardID,
	}
}

// LimitConfigOptions returns f with only its first maxOptions config options.
//
// A limit of zero is the same as Sanitize. If f has at most maxOptions
// options, f itself is returned. A negative limit returns ErrNegativeLimit.
func (f *FQBN) LimitConfigOptions(maxOptions int) (*FQBN, error) {
	if maxOptions < 0 {
		return nil, ErrNegativeLimit
	}
	if maxOptions == 0 {
		return f.Sanitize(), nil
	}
	if len(f.options) <= maxOptions {
		return f, nil
	}

	options := make([]Option, maxOptions)
	copy(options, f.options[:maxOptions])
	return &FQBN{
		vendor:  f.vendor,
		arch:    f.arch,
		boardID: f.boardID,
		options: options,
	}, nil
}
