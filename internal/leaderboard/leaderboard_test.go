package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ace", "ace"},
		{"Ace_Pilot 9", "Ace_Pilot "},
		{"a:b-c!d", "abcd"},
		{"ÄÖÜ xy", " xy"},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnop"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeName(tt.in), "SanitizeName(%q)", tt.in)
	}
}

func TestValidName(t *testing.T) {
	assert.False(t, ValidName(""))
	assert.False(t, ValidName("a"))
	assert.True(t, ValidName("ab"))
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  ace  ", "ace"},
		{"a\t\n b", "a b"},
		{"a:b", "a_b"},
		{"pilot-42!", "pilot42"},
		{"Ärger", "Ärger"},
		{"ééééééééééééééééééé", "éééééééééééééééé"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "NormalizeName(%q)", tt.in)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "error", StateError.String())
	assert.Equal(t, "unknown", State(42).String())
}
