package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/moffa90/go-fqbn/fqbn"
)

// Format is the encoding of a descriptor file.
type Format int

// Supported descriptor formats.
const (
	FormatYAML Format = iota + 1
	FormatTOML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatForPath returns the descriptor format matching the extension of path.
func FormatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unsupported descriptor extension %q", ext)
	}
}

// Parse parses a descriptor file from the given path.
// The format is chosen from the file extension.
//
// Example:
//
//	opts, err := menu.Parse("boards/nano.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Menus: %d\n", len(opts))
func Parse(path string) ([]fqbn.ConfigOption, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f, format)
}

// ParseReader parses a descriptor from any io.Reader.
// This is useful for testing and reading from non-file sources.
//
// Example:
//
//	data := strings.NewReader(yamlContent)
//	opts, err := menu.ParseReader(data, menu.FormatYAML)
func ParseReader(r io.Reader, format Format) ([]fqbn.ConfigOption, error) {
	var raw file

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("empty file")
			}
			return nil, fmt.Errorf("decode yaml: %w", err)
		}

	case FormatTOML:
		meta, err := toml.NewDecoder(r).Decode(&raw)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}

	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("empty file")
			}
			return nil, fmt.Errorf("decode json: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported descriptor format %s", format)
	}

	opts := raw.configOptions()
	if len(opts) == 0 {
		return nil, fmt.Errorf("no config options found")
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}

	return opts, nil
}

// Validate checks a list of descriptors:
//   - option keys and values use the FQBN character classes
//   - every option has at least one value
//   - option keys are unique, and values are unique within an option
//
// Selection is not checked; merging into an FQBN reports options with zero or
// several selected values.
func Validate(opts []fqbn.ConfigOption) error {
	seen := make(map[string]int, len(opts))

	for i, opt := range opts {
		if !fqbn.ValidKey(opt.Option) {
			return fmt.Errorf("option %d: invalid key %q", i, opt.Option)
		}

		if prev, ok := seen[opt.Option]; ok {
			return fmt.Errorf("option %d (%s): duplicate of option %d", i, opt.Option, prev)
		}
		seen[opt.Option] = i

		if len(opt.Values) == 0 {
			return fmt.Errorf("option %d (%s): no values", i, opt.Option)
		}

		values := make(map[string]struct{}, len(opt.Values))
		for _, v := range opt.Values {
			if !fqbn.ValidValue(v.Value) {
				return fmt.Errorf("option %d (%s): invalid value %q", i, opt.Option, v.Value)
			}
			if _, ok := values[v.Value]; ok {
				return fmt.Errorf("option %d (%s): duplicate value %q", i, opt.Option, v.Value)
			}
			values[v.Value] = struct{}{}
		}
	}

	return nil
}
