package menu

import "github.com/moffa90/go-fqbn/fqbn"

// Find returns the descriptor of the option key.
func Find(opts []fqbn.ConfigOption, key string) (fqbn.ConfigOption, bool) {
	for _, opt := range opts {
		if opt.Option == key {
			return opt, true
		}
	}
	return fqbn.ConfigOption{}, false
}

// Select returns a copy of opts where option key has exactly value selected.
// The input is not modified.
//
// Example:
//
//	opts, err := menu.Select(opts, "cpu", "atmega168")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Select(opts []fqbn.ConfigOption, key, value string) ([]fqbn.ConfigOption, error) {
	idx := -1
	for i, opt := range opts {
		if opt.Option == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &UnknownOptionError{Option: key}
	}

	found := false
	values := make([]fqbn.ConfigValue, len(opts[idx].Values))
	for i, v := range opts[idx].Values {
		v.Selected = v.Value == value
		found = found || v.Selected
		values[i] = v
	}
	if !found {
		return nil, &UnknownValueError{
			Option:  key,
			Value:   value,
			Allowed: Values(opts[idx]),
		}
	}

	out := make([]fqbn.ConfigOption, len(opts))
	copy(out, opts)
	out[idx].Values = values
	return out, nil
}

// Values returns the candidate values of opt in order.
func Values(opt fqbn.ConfigOption) []string {
	values := make([]string, 0, len(opt.Values))
	for _, v := range opt.Values {
		values = append(values, v.Value)
	}
	return values
}
