package fqbn

// ConfigOption describes a board configuration menu: an option key and the
// candidate values it can take. Exactly one value is expected to be selected
// when the descriptor is merged into an FQBN.
type ConfigOption struct {
	// Option is the config option key (e.g. "cpu")
	Option string `json:"option"`

	// OptionLabel is the human-readable menu name (optional)
	OptionLabel string `json:"option_label,omitempty"`

	// Values are the candidate values of the menu
	Values []ConfigValue `json:"values"`
}

// ConfigValue is one candidate value of a ConfigOption.
type ConfigValue struct {
	// Value is the value written into the FQBN (e.g. "atmega328")
	Value string `json:"value"`

	// ValueLabel is the human-readable value name (optional)
	ValueLabel string `json:"value_label,omitempty"`

	// Selected marks the chosen value
	Selected bool `json:"selected,omitempty"`
}

// NewConfigOption returns a descriptor with value as its single, selected candidate.
func NewConfigOption(key, value string) ConfigOption {
	return ConfigOption{
		Option: key,
		Values: []ConfigValue{{Value: value, Selected: true}},
	}
}

// SelectedValue returns the selected value and the number of selected values.
// When more than one value is selected, the first one is returned.
func (o ConfigOption) SelectedValue() (string, int) {
	var value string
	count := 0
	for _, v := range o.Values {
		if !v.Selected {
			continue
		}
		if count == 0 {
			value = v.Value
		}
		count++
	}
	return value, count
}
