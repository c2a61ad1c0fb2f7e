package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestValidPINFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pin  string
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"12 4", false},
		{"", false},
		{"١٢٣٤", false}, // non-ASCII digits
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPINFormat(tt.pin), "pin %q", tt.pin)
	}
}

func TestHashAndVerifyPIN(t *testing.T) {
	t.Parallel()

	hash, err := HashPIN("4321", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "4321", hash)

	assert.True(t, VerifyPIN(hash, "4321"))
	assert.False(t, VerifyPIN(hash, "1234"))
	assert.False(t, VerifyPIN("not-a-hash", "4321"))
}
