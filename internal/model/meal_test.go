package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDinnerChoice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want DinnerChoice
		ok   bool
	}{
		{"Egg", ChoiceEgg, true},
		{"Fish", ChoiceFish, true},
		{"Chicken", ChoiceChicken, true},
		{"egg", "", false}, // casing matters on the wire
		{"EGG", "", false},
		{"Mutton", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDinnerChoice(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestDateLayoutRoundTrip(t *testing.T) {
	t.Parallel()

	d, err := time.Parse(DateLayout, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", d.Format(DateLayout))
}
