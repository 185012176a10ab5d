package fqbn

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MarshalText implements encoding.TextMarshaler.
// JSON, YAML and TOML encoders use it to write an FQBN as a plain string.
func (f *FQBN) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text is validated with Parse. On error f is left unchanged.
//
// UnmarshalText overwrites *f in place, so it must only target a freshly
// allocated FQBN (as decoders do for a nil *FQBN field), never a value that
// came from Parse or an update and may be shared.
func (f *FQBN) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler, encoding the FQBN as a CBOR text string.
func (f *FQBN) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(f.String())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (f *FQBN) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode FQBN: %w", err)
	}
	return f.UnmarshalText([]byte(s))
}
