package fqbn

import (
	"regexp"
	"strings"
)

// Separators of the FQBN string form.
const (
	// SegmentSeparator separates vendor, architecture, board ID and options
	SegmentSeparator = ":"

	// OptionSeparator separates config option pairs
	OptionSeparator = ","

	// ValueSeparator separates an option key from its value
	ValueSeparator = "="
)

var (
	segmentPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]*$`)
	keyPattern     = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	valuePattern   = regexp.MustCompile(`^[A-Za-z0-9=_.-]*$`)
)

// FQBN is a parsed fully qualified board name.
//
// An FQBN is immutable and safe for concurrent use. Always handle it through a
// pointer: operations that change nothing return the same pointer.
//
// The zero value is not a valid FQBN; it only exists as a decoding target and
// its String is "". Use Parse to obtain one.
type FQBN struct {
	vendor  string
	arch    string
	boardID string

	// options is nil when the FQBN has no config options, never empty
	options []Option
}

// Option is a single key=value config option of an FQBN.
type Option struct {
	Key   string
	Value string
}

// String returns the "key=value" form of the option.
func (o Option) String() string {
	return o.Key + ValueSeparator + o.Value
}

// Parse parses an FQBN string.
// Returns an *InvalidFQBNError or a *ConfigOptionError if the string is not valid.
//
// Example:
//
//	f, err := fqbn.Parse("arduino:avr:uno")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f.BoardID()) // uno
func Parse(s string) (*FQBN, error) {
	segments := strings.Split(s, SegmentSeparator)
	if len(segments) < 3 || len(segments) > 4 {
		return nil, invalid(s, "expected 3 or 4 segments, got %d", len(segments))
	}

	for _, segment := range segments[:3] {
		if !segmentPattern.MatchString(segment) {
			return nil, invalid(s, "segment %q contains invalid characters", segment)
		}
	}

	if segments[2] == "" {
		return nil, invalid(s, "board ID is empty")
	}

	var options []Option
	if len(segments) == 4 {
		var err error
		options, err = parseOptions(s, segments[3])
		if err != nil {
			return nil, err
		}
	}

	return &FQBN{
		vendor:  segments[0],
		arch:    segments[1],
		boardID: segments[2],
		options: options,
	}, nil
}

// parseOptions parses the options segment of raw.
// An empty segment yields a single empty tuple and is rejected.
func parseOptions(raw, segment string) ([]Option, error) {
	tuples := strings.Split(segment, OptionSeparator)
	options := make([]Option, 0, len(tuples))

	for _, tuple := range tuples {
		key, value, ok := strings.Cut(tuple, ValueSeparator)
		if !ok {
			return nil, configError(raw, "malformed config option %q", tuple)
		}

		if !keyPattern.MatchString(key) {
			return nil, configError(raw, "invalid config option key %q in %q", key, tuple)
		}

		if !valuePattern.MatchString(value) {
			return nil, configError(raw, "invalid config option value %q in %q", value, tuple)
		}

		if i := indexOf(options, key); i >= 0 {
			return nil, configError(raw, "duplicate config option %q: %q and %q",
				key, options[i].Value, value)
		}

		options = append(options, Option{Key: key, Value: value})
	}

	return options, nil
}

// ValidKey reports whether s can be used as a config option key.
func ValidKey(s string) bool { return keyPattern.MatchString(s) }

// ValidValue reports whether s can be used as a config option value.
func ValidValue(s string) bool { return valuePattern.MatchString(s) }

// MustParse is like Parse but panics if the string is not a valid FQBN.
// It simplifies initialization of package-level variables and tests.
func MustParse(s string) *FQBN {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Valid parses s and returns the FQBN, or nil if s is not a valid FQBN.
//
// Example:
//
//	if f := fqbn.Valid(input); f == nil {
//	    fmt.Println("not an FQBN")
//	}
func Valid(s string) *FQBN {
	f, err := Parse(s)
	if err != nil {
		return nil
	}
	return f
}

// Vendor returns the vendor segment. It may be empty.
func (f *FQBN) Vendor() string { return f.vendor }

// Arch returns the architecture segment. It may be empty.
func (f *FQBN) Arch() string { return f.arch }

// BoardID returns the board ID segment. It is never empty.
func (f *FQBN) BoardID() string { return f.boardID }

// HasConfigOptions reports whether the FQBN carries any config option.
func (f *FQBN) HasConfigOptions() bool { return f.options != nil }

// NumConfigOptions returns the number of config options.
func (f *FQBN) NumConfigOptions() int { return len(f.options) }

// ConfigOptions returns a copy of the config options in order, or nil if
// there are none.
func (f *FQBN) ConfigOptions() []Option {
	if f.options == nil {
		return nil
	}
	out := make([]Option, len(f.options))
	copy(out, f.options)
	return out
}

// ConfigOption returns the value of the config option key.
func (f *FQBN) ConfigOption(key string) (string, bool) {
	if i := indexOf(f.options, key); i >= 0 {
		return f.options[i].Value, true
	}
	return "", false
}

// String returns the canonical string form, including config options.
// A nil or zero FQBN returns "".
func (f *FQBN) String() string {
	if f == nil || f.boardID == "" {
		return ""
	}
	return format(f.vendor, f.arch, f.boardID, f.options)
}

// StringWithoutConfig returns the canonical string form without config options.
func (f *FQBN) StringWithoutConfig() string {
	if f == nil || f.boardID == "" {
		return ""
	}
	return format(f.vendor, f.arch, f.boardID, nil)
}

// Equal reports whether f and other name the same board with the same set of
// config options. The order of the options is not significant.
func (f *FQBN) Equal(other *FQBN) bool {
	if f == nil || other == nil {
		return f == other
	}

	if f.vendor != other.vendor || f.arch != other.arch || f.boardID != other.boardID {
		return false
	}

	if len(f.options) != len(other.options) {
		return false
	}
	for _, o := range f.options {
		if v, ok := other.ConfigOption(o.Key); !ok || v != o.Value {
			return false
		}
	}
	return true
}

func format(vendor, arch, boardID string, options []Option) string {
	var b strings.Builder
	b.WriteString(vendor)
	b.WriteString(SegmentSeparator)
	b.WriteString(arch)
	b.WriteString(SegmentSeparator)
	b.WriteString(boardID)

	for i, o := range options {
		if i == 0 {
			b.WriteString(SegmentSeparator)
		} else {
			b.WriteString(OptionSeparator)
		}
		b.WriteString(o.String())
	}
	return b.String()
}

func indexOf(options []Option, key string) int {
	for i, o := range options {
		if o.Key == key {
			return i
		}
	}
	return -1
}
