package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestFooter(t *testing.T) {
	got := BuildRequestFooter("123456789", 250)
	assert.Equal(t, "User ID: 123456789 | Request Amount: 250", got)
}

func TestParseRequestFooter_RoundTrip(t *testing.T) {
	userID, amount, ok := ParseRequestFooter(BuildRequestFooter("123456789", 250))
	require.True(t, ok)
	assert.Equal(t, "123456789", userID)
	assert.Equal(t, int64(250), amount)
}

func TestParseRequestFooter_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"unrelated footer", "some other bot's footer"},
		{"missing amount", "User ID: 123456789"},
		{"missing user", "Request Amount: 250"},
		{"non-numeric amount", "User ID: 123456789 | Request Amount: lots"},
		{"empty user", "User ID:  | Request Amount: 250"},
		{"wrong keys", "From: 123 | To: 456 | Amount: 250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := ParseRequestFooter(tt.text)
			assert.False(t, ok)
		})
	}
}
