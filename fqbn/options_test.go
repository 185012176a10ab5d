package fqbn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithConfigOptions(t *testing.T) {
	tests := []struct {
		name string
		base string
		opts []ConfigOption
		want string
	}{
		{
			name: "append to no options",
			base: "a:b:c",
			opts: []ConfigOption{NewConfigOption("o1", "v1")},
			want: "a:b:c:o1=v1",
		},
		{
			name: "existing keys keep position",
			base: "a:b:c:o1=v1,o2=w1",
			opts: []ConfigOption{
				NewConfigOption("o3", "x1"),
				NewConfigOption("o2", "w2"),
			},
			want: "a:b:c:o1=v1,o2=w2,o3=x1",
		},
		{
			name: "new keys in descriptor order",
			base: "a:b:c:o1=v1",
			opts: []ConfigOption{
				NewConfigOption("o3", "x"),
				NewConfigOption("o2", "y"),
			},
			want: "a:b:c:o1=v1,o3=x,o2=y",
		},
		{
			name: "selected among candidates",
			base: "arduino:avr:nano",
			opts: []ConfigOption{{
				Option:      "cpu",
				OptionLabel: "Processor",
				Values: []ConfigValue{
					{Value: "atmega328", ValueLabel: "ATmega328P"},
					{Value: "atmega328old", ValueLabel: "ATmega328P (Old Bootloader)", Selected: true},
					{Value: "atmega168", ValueLabel: "ATmega168"},
				},
			}},
			want: "arduino:avr:nano:cpu=atmega328old",
		},
		{
			name: "empty value",
			base: "a:b:c:o1=v1",
			opts: []ConfigOption{NewConfigOption("o1", "")},
			want: "a:b:c:o1=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := MustParse(tt.base)
			got, err := f.WithConfigOptions(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.base, f.String(), "receiver must not change")
		})
	}
}

func TestWithConfigOptionsNoop(t *testing.T) {
	f := MustParse("a:b:c:o1=v1,o2=v2")

	t.Run("no descriptors", func(t *testing.T) {
		got, err := f.WithConfigOptions()
		require.NoError(t, err)
		assert.Same(t, f, got)
	})

	t.Run("same values", func(t *testing.T) {
		got, err := f.WithConfigOptions(
			NewConfigOption("o2", "v2"),
			NewConfigOption("o1", "v1"),
		)
		require.NoError(t, err)
		assert.Same(t, f, got)
	})

	t.Run("subset", func(t *testing.T) {
		got, err := f.WithConfigOptions(NewConfigOption("o1", "v1"))
		require.NoError(t, err)
		assert.Same(t, f, got)
	})
}

func TestWithConfigOptionsErrors(t *testing.T) {
	f := MustParse("a:b:c:o1=v1")

	tests := []struct {
		name   string
		opts   []ConfigOption
		errMsg string
	}{
		{
			name:   "no selected value",
			opts:   []ConfigOption{{Option: "o2", Values: []ConfigValue{{Value: "x"}, {Value: "y"}}}},
			errMsg: `no selected value for config option "o2"`,
		},
		{
			name:   "no values at all",
			opts:   []ConfigOption{{Option: "o2"}},
			errMsg: `no selected value for config option "o2"`,
		},
		{
			name: "multiple selected values",
			opts: []ConfigOption{{Option: "o2", Values: []ConfigValue{
				{Value: "x", Selected: true},
				{Value: "y", Selected: true},
			}}},
			errMsg: `multiple selected values for config option "o2"`,
		},
		{
			name: "duplicate config options",
			opts: []ConfigOption{
				NewConfigOption("o2", "x"),
				NewConfigOption("o2", "y"),
			},
			errMsg: `duplicate config options "o2": "x" and "y"`,
		},
		{
			name: "duplicate with empty first value",
			opts: []ConfigOption{
				NewConfigOption("o2", ""),
				NewConfigOption("o2", "y"),
			},
			errMsg: `duplicate config options "o2": "" and "y"`,
		},
		{
			name:   "invalid value",
			opts:   []ConfigOption{NewConfigOption("o2", "x/y")},
			errMsg: `invalid config option value "x/y"`,
		},
		{
			name:   "value with comma",
			opts:   []ConfigOption{NewConfigOption("o2", "a,b")},
			errMsg: `invalid config option value "a,b" for key "o2"`,
		},
		{
			name:   "value with extra option",
			opts:   []ConfigOption{NewConfigOption("o2", "x,o3=y")},
			errMsg: `invalid config option value "x,o3=y" for key "o2"`,
		},
		{
			name:   "key with equals sign",
			opts:   []ConfigOption{NewConfigOption("o2=z", "w")},
			errMsg: `invalid config option key "o2=z"`,
		},
		{
			name: "invalid entry rejected before valid ones merge",
			opts: []ConfigOption{
				NewConfigOption("o1", "x"),
				NewConfigOption("o2", "a,b"),
			},
			errMsg: `invalid config option value "a,b"`,
		},
		{
			name:   "invalid key",
			opts:   []ConfigOption{NewConfigOption("o 2", "x")},
			errMsg: `invalid config option key "o 2"`,
		},
		{
			name:   "value with colon",
			opts:   []ConfigOption{NewConfigOption("o2", "x:y")},
			errMsg: `invalid config option value "x:y" for key "o2"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.WithConfigOptions(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.True(t, IsInvalid(err))
			assert.True(t, IsConfigOption(err))
		})
	}
}

func TestSetConfigOption(t *testing.T) {
	f := MustParse("a:b:c:o1=v1,o2=v2")

	t.Run("update existing", func(t *testing.T) {
		got, err := f.SetConfigOption("o1", "x", true)
		require.NoError(t, err)
		assert.Equal(t, "a:b:c:o1=x,o2=v2", got.String())
	})

	t.Run("insert absent non-strict", func(t *testing.T) {
		got, err := f.SetConfigOption("o3", "x", false)
		require.NoError(t, err)
		assert.Equal(t, "a:b:c:o1=v1,o2=v2,o3=x", got.String())
	})

	t.Run("absent strict", func(t *testing.T) {
		got, err := f.SetConfigOption("o3", "x", true)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, IsConfigOption(err))
		assert.Contains(t, err.Error(), `config option "o3" is not present`)
		assert.Contains(t, err.Error(), "a:b:c:o1=v1,o2=v2")
	})

	t.Run("strict without options", func(t *testing.T) {
		_, err := MustParse("a:b:c").SetConfigOption("o1", "v", true)
		require.Error(t, err)
		assert.True(t, IsConfigOption(err))
	})

	t.Run("value cannot add options", func(t *testing.T) {
		got, err := f.SetConfigOption("o3", "x,o4=y", false)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, IsConfigOption(err))
	})

	t.Run("strict value cannot add keys", func(t *testing.T) {
		got, err := f.SetConfigOption("o1", "x,o9=y", true)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, IsConfigOption(err))
		assert.Contains(t, err.Error(), `invalid config option value "x,o9=y" for key "o1"`)
	})

	t.Run("same value", func(t *testing.T) {
		got, err := f.SetConfigOption("o2", "v2", true)
		require.NoError(t, err)
		assert.Same(t, f, got)
	})
}

func TestWithFQBN(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		other string
		want  string
	}{
		{
			name:  "merge into no options",
			base:  "a:b:c",
			other: "a:b:c:o1=v1,o2=v2",
			want:  "a:b:c:o1=v1,o2=v2",
		},
		{
			name:  "keeps options missing from other",
			base:  "a:b:c:o1=v1,o2=v2",
			other: "a:b:c:o2=x",
			want:  "a:b:c:o1=v1,o2=x",
		},
		{
			name:  "appends in other's order",
			base:  "a:b:c:o1=v1",
			other: "a:b:c:o3=z,o1=y,o2=x",
			want:  "a:b:c:o1=y,o3=z,o2=x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustParse(tt.base).WithFQBN(tt.other)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	t.Run("other without options", func(t *testing.T) {
		f := MustParse("a:b:c:o1=v1")
		got, err := f.WithFQBN("a:b:c")
		require.NoError(t, err)
		assert.Same(t, f, got)
	})

	t.Run("no change", func(t *testing.T) {
		f := MustParse("a:b:c:o1=v1,o2=v2")
		got, err := f.WithFQBN("a:b:c:o2=v2,o1=v1")
		require.NoError(t, err)
		assert.Same(t, f, got)
	})
}

func TestWithFQBNErrors(t *testing.T) {
	f := MustParse("a:b:c:o1=v1")

	tests := []struct {
		name   string
		other  string
		errMsg string
	}{
		{name: "vendor mismatch", other: "x:b:c:o1=v2", errMsg: "board mismatch"},
		{name: "arch mismatch", other: "a:x:c", errMsg: "board mismatch"},
		{name: "board mismatch", other: "a:b:x:o1=v1", errMsg: "board mismatch"},
		{name: "invalid other", other: "a:b", errMsg: "expected 3 or 4 segments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.WithFQBN(tt.other)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.True(t, IsInvalid(err))
		})
	}

	t.Run("mismatch names both", func(t *testing.T) {
		_, err := f.WithFQBN("x:b:c:o1=v2")
		require.Error(t, err)
		assert.True(t, IsConfigOption(err))
		assert.Contains(t, err.Error(), "a:b:c:o1=v1")
		assert.Contains(t, err.Error(), "x:b:c:o1=v2")
	})
}

func TestSanitize(t *testing.T) {
	f := MustParse("a:b:c:o1=v1,o2=v2")

	s := f.Sanitize()
	assert.Equal(t, "a:b:c", s.String())
	assert.False(t, s.HasConfigOptions())
	assert.Nil(t, s.ConfigOptions())
	assert.Equal(t, "a:b:c:o1=v1,o2=v2", f.String())

	assert.Same(t, s, s.Sanitize())
	assert.True(t, s.Sanitize().Equal(s))

	plain := MustParse("a:b:c")
	assert.Same(t, plain, plain.Sanitize())
}

func TestLimitConfigOptions(t *testing.T) {
	f := MustParse("a:b:c:o1=v1,o2=v2,o3=v3")

	tests := []struct {
		name string
		max  int
		want string
		same bool
	}{
		{name: "zero", max: 0, want: "a:b:c"},
		{name: "one", max: 1, want: "a:b:c:o1=v1"},
		{name: "two", max: 2, want: "a:b:c:o1=v1,o2=v2"},
		{name: "exact", max: 3, want: "a:b:c:o1=v1,o2=v2,o3=v3", same: true},
		{name: "above", max: 10, want: "a:b:c:o1=v1,o2=v2,o3=v3", same: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.LimitConfigOptions(tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			if tt.same {
				assert.Same(t, f, got)
			}

			again, err := got.LimitConfigOptions(tt.max)
			require.NoError(t, err)
			assert.Same(t, got, again)
		})
	}

	t.Run("zero equals sanitize", func(t *testing.T) {
		got, err := f.LimitConfigOptions(0)
		require.NoError(t, err)
		assert.True(t, got.Equal(f.Sanitize()))
	})

	t.Run("zero without options", func(t *testing.T) {
		plain := MustParse("a:b:c")
		got, err := plain.LimitConfigOptions(0)
		require.NoError(t, err)
		assert.Same(t, plain, got)
	})

	t.Run("negative", func(t *testing.T) {
		got, err := f.LimitConfigOptions(-1)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, ErrNegativeLimit))
	})
}
