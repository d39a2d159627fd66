package numeric

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		valid bool
		want  string
	}{
		{"100", true, "100"},
		{" 250.5 ", true, "250.5"},
		{"-30", true, "-30"},
		{"1e3", true, "1000"},
		{"0", true, "0"},
		{"", false, ""},
		{"   ", false, ""},
		{"abc", false, ""},
		{"12abc", false, ""},
		{"1,000", false, ""},
		{"1e900000000", false, ""},
		{"1e-900000000", false, ""},
		{"1e30", true, "1000000000000000000000000000000"},
		{"1e31", false, ""},
		{"1e-30", true, "0.000000000000000000000000000001"},
		{"1e-31", false, ""},
		{strings.Repeat("9", 40), true, strings.Repeat("9", 40)},
		{strings.Repeat("9", 41), false, ""},
	}
	for _, tt := range tests {
		got := Parse(tt.input)
		assert.Equal(t, tt.valid, got.Valid, "Parse(%q).Valid", tt.input)
		if tt.valid {
			assert.Equal(t, tt.want, got.Value.String(), "Parse(%q)", tt.input)
		}
	}
}

func TestIsPositive(t *testing.T) {
	assert.True(t, Parse("0.01").IsPositive())
	assert.False(t, Parse("0").IsPositive())
	assert.False(t, Parse("-5").IsPositive())
	assert.False(t, Parse("five").IsPositive())
	assert.False(t, Invalid.IsPositive())
}

func TestEqualInt(t *testing.T) {
	assert.True(t, Parse("1111").EqualInt(1111))
	assert.True(t, Parse("1111.0").EqualInt(1111))
	assert.False(t, Parse("1112").EqualInt(1111))
	assert.False(t, Parse("").EqualInt(0), "empty text never matches, not even zero")
	assert.False(t, Parse("pin").EqualInt(0))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(decimal.NewFromInt(5000)))
	assert.True(t, InRange(decimal.New(1, -MaxExponent)))
	assert.False(t, InRange(decimal.New(1, -MaxExponent-1)))
	assert.False(t, InRange(decimal.New(1, MaxExponent+1)))
}

func TestParse_HugeExponentIsNeverPositive(t *testing.T) {
	assert.False(t, Parse("1e-900000000").IsPositive())
	assert.False(t, Parse("1e900000000").IsPositive())
}
