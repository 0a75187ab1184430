package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Jane", true},
		{"Mary Ann", true},
		{"VAN DYKE", true},
		{"Mary\u00a0Ann", true},
		{"Mary\u3000Ann", true},
		{"Mary\tAnn", true},
		{"\u212Aelvin", false},
		{"Jos\u00e9", false},
		{"J4ne", false},
		{"O'Brien", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, isValidName(tc.name), "%q", tc.name)
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@mail.example.org", true},
		{"jane@example", false},
		{"jane doe@example.com", false},
		{"jane\u00a0doe@example.com", false},
		{"jane@exa@mple.com", false},
		{"@example.com", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, isValidEmail(tc.email), "%q", tc.email)
	}
}

func TestIsStrongPassword_CountsUTF16Units(t *testing.T) {
	// each emoji is a surrogate pair: 5 runes but 6 code units
	assert.False(t, isStrongPassword("Ab1!\U0001F600"))
	// 7 runes, 9 code units
	assert.True(t, isStrongPassword("Ab1!x\U0001F600\U0001F600"))
	assert.False(t, isStrongPassword("Abcdef1!\u2028x"))
}
