// Package menu loads board configuration menus from descriptor files.
//
// # Descriptor Format
//
// A board definition lists its configuration menus and the value selected by
// default for each of them. The same schema is accepted as YAML, TOML or JSON.
//
// YAML:
//
//	config_options:
//	  - option: cpu
//	    option_label: Processor
//	    values:
//	      - value: atmega328
//	        value_label: ATmega328P
//	        selected: true
//	      - value: atmega168
//	        value_label: ATmega168
//
// TOML:
//
//	[[config_options]]
//	option = "cpu"
//	option_label = "Processor"
//
//	  [[config_options.values]]
//	  value = "atmega328"
//	  value_label = "ATmega328P"
//	  selected = true
//
// # Usage
//
// Load the menus of a board and merge their defaults into an FQBN:
//
//	opts, err := menu.Parse("nano.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := fqbn.MustParse("arduino:avr:nano").WithConfigOptions(opts...)
//
// Change the selected value of a menu:
//
//	opts, err = menu.Select(opts, "cpu", "atmega168")
//
// # Error Handling
//
// Parse returns detailed errors for invalid files:
//   - Unknown file extension or format
//   - Decoding errors from the underlying YAML, TOML or JSON decoder
//   - Unknown TOML keys
//   - Invalid option keys or values, with the option index
//   - Duplicate options, or duplicate values within one option
//
// Select returns an UnknownOptionError or an UnknownValueError.
package menu
