package weight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName_Weighted(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		weight Weight
	}{
		{"a.1", "a", 1},
		{"a.0", "a", 0},
		{"a.-2", "a", -2},
		{"a.+7", "a", 7},
		{"a.1.1", "a", 1.1},
		{"a.1.25", "a", 1.25},
		{"a.-0.5", "a", -0.5},
		{"a.-.5", "a", -0.5},
		{"a..5", "a", 0.5},
		{"a.+.5", "a", 0.5},
		{"job-queue.10", "job-queue", 10},
		{"a.Infinity", "a", Top},
		{"a.+Infinity", "a", Top},
		{"a.-Infinity", "a", Bottom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseName(tt.name)
			require.NoError(t, err)
			assert.True(t, parsed.Explicit, "weight should be explicit")
			assert.Equal(t, tt.key, parsed.Key)
			assert.Equal(t, tt.weight, parsed.Weight)
		})
	}
}

func TestParseName_Opaque(t *testing.T) {
	tests := []string{
		"a",
		"a.e",         // non-numeral suffix keeps the dot
		"a.1e5",       // exponents are not numerals
		"a.Inf",       // only the full tokens are recognized
		"a.infinity",  // tokens are case-sensitive
		"a.1x",        // trailing garbage
		"a.",          // empty suffix
		".e",          // leading dot with non-numeral suffix
		"deploy-done", // plain key
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			parsed, err := ParseName(name)
			require.NoError(t, err)
			assert.False(t, parsed.Explicit, "no weight should be encoded")
			assert.Equal(t, name, parsed.Key, "opaque key keeps the whole name")
			assert.Equal(t, Bottom, parsed.Weight, "opaque names get the default weight")
		})
	}
}

func TestParseName_Invalid(t *testing.T) {
	tests := []string{
		"",        // empty name
		".5",      // empty key with numeric suffix
		".1.5",    // empty key in decimal form
		"a.1.2.3", // more than one weight segment
		"a.b.c",   // two dots that do not form a decimal
		"a.1.e",   // bad fraction part
		"a.e.5",   // bad integer part
		"a.1.",    // empty fraction part
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseName(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.False(t, Valid(name))
		})
	}
}

func TestParseName_OpaqueKeyCannotTakeWeightLater(t *testing.T) {
	// "a.e" registers the literal key "a.e"; attaching a weight to that key
	// would need a second separator, which the grammar rejects.
	opaque, err := ParseName("a.e")
	require.NoError(t, err)
	require.Equal(t, "a.e", opaque.Key)

	_, err = ParseName("a.e.5")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("a"))
	assert.True(t, Valid("a.5"))
	assert.True(t, Valid("a.e"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("a.1.2.3"))
}
