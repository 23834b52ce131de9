package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPIN(t *testing.T) {
	tests := []struct {
		name string
		pin  string
		want bool
	}{
		{name: "four digits", pin: "1234", want: true},
		{name: "leading zeros", pin: "0012", want: true},
		{name: "too short", pin: "123", want: false},
		{name: "too long", pin: "12345", want: false},
		{name: "empty", pin: "", want: false},
		{name: "letters", pin: "12ab", want: false},
		{name: "unicode digits rejected", pin: "١٢٣٤", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPIN(tt.pin))
		})
	}
}

func TestHashPIN_RoundTrip(t *testing.T) {
	digest, err := HashPIN("4321")
	assert.NoError(t, err)
	assert.NotEqual(t, "4321", digest)

	assert.True(t, CheckPIN(digest, "4321"))
	assert.False(t, CheckPIN(digest, "1234"))
	assert.False(t, CheckPIN("", "4321"))
}

func TestHashPIN_SaltedPerCall(t *testing.T) {
	first, err := HashPIN("9999")
	assert.NoError(t, err)
	second, err := HashPIN("9999")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPIN(first, "9999"))
	assert.True(t, CheckPIN(second, "9999"))
}
