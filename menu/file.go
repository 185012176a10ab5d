package menu

import "github.com/moffa90/go-fqbn/fqbn"

// file is the on-disk layout of a descriptor file.
type file struct {
	// ConfigOptions lists the board menus in display order
	ConfigOptions []fileOption `yaml:"config_options" toml:"config_options" json:"config_options"`
}

// fileOption is one menu of a descriptor file.
type fileOption struct {
	Option      string      `yaml:"option" toml:"option" json:"option"`
	OptionLabel string      `yaml:"option_label" toml:"option_label" json:"option_label"`
	Values      []fileValue `yaml:"values" toml:"values" json:"values"`
}

// fileValue is one candidate value of a menu.
type fileValue struct {
	Value      string `yaml:"value" toml:"value" json:"value"`
	ValueLabel string `yaml:"value_label" toml:"value_label" json:"value_label"`
	Selected   bool   `yaml:"selected" toml:"selected" json:"selected"`
}

func (f *file) configOptions() []fqbn.ConfigOption {
	opts := make([]fqbn.ConfigOption, 0, len(f.ConfigOptions))
	for _, o := range f.ConfigOptions {
		opt := fqbn.ConfigOption{
			Option:      o.Option,
			OptionLabel: o.OptionLabel,
			Values:      make([]fqbn.ConfigValue, 0, len(o.Values)),
		}
		for _, v := range o.Values {
			opt.Values = append(opt.Values, fqbn.ConfigValue{
				Value:      v.Value,
				ValueLabel: v.ValueLabel,
				Selected:   v.Selected,
			})
		}
		opts = append(opts, opt)
	}
	return opts
}
