// Package fqbn parses, validates and transforms fully qualified board names.
//
// # FQBN Format
//
// A fully qualified board name identifies a board and, optionally, the values
// chosen for its configuration menus:
//
//	VENDOR:ARCH:BOARD_ID[:KEY1=VAL1[,KEY2=VAL2...]]
//
// Example:
//
//	arduino:avr:nano:cpu=atmega328old,clock=16MHz
//	  arduino          = Vendor
//	  avr              = Architecture
//	  nano             = Board ID (required)
//	  cpu=atmega328old = first config option
//	  clock=16MHz      = second config option
//
// Vendor, architecture and board ID use the characters [A-Za-z0-9_.-].
// Option keys use the same characters and must not be empty. Option values may
// also contain '=', since only the first '=' of a pair separates key and value.
//
// # Immutability
//
// An *FQBN never changes after construction. Every update returns a new value,
// or the receiver itself when the update would not change anything:
//
//	f := fqbn.MustParse("arduino:avr:uno")
//	f.Sanitize() == f // true
//
// Decoding is the one exception: UnmarshalText and UnmarshalCBOR fill in their
// receiver, so only decode into a fresh FQBN that nothing else points to.
//
// # Usage
//
// Parse and update an FQBN:
//
//	f, err := fqbn.Parse("arduino:avr:nano:cpu=atmega328")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err = f.SetConfigOption("cpu", "atmega168", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(f) // arduino:avr:nano:cpu=atmega168
//
// Merge the selections of configuration menus:
//
//	f, err = f.WithConfigOptions(fqbn.ConfigOption{
//	    Option: "clock",
//	    Values: []fqbn.ConfigValue{
//	        {Value: "8MHz"},
//	        {Value: "16MHz", Selected: true},
//	    },
//	})
//
// # Error Handling
//
// Parsing and updates fail with one of two error types:
//   - InvalidFQBNError: wrong segment count, bad characters, empty board ID
//   - ConfigOptionError: malformed or duplicate options, bad menu selections
//
// ConfigOptionError unwraps to an InvalidFQBNError, so IsInvalid reports true
// for both. Use Valid for a lenient parse that returns nil instead of an error.
package fqbn
