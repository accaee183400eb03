package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareToken_Shape(t *testing.T) {
	token := NewShareToken()
	require.Len(t, token, 64)
	for _, r := range token {
		isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
		assert.True(t, isHex, "unexpected character %q in token", r)
	}
}

func TestNewShareToken_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		token := NewShareToken()
		_, dup := seen[token]
		require.False(t, dup, "duplicate share token generated")
		seen[token] = struct{}{}
	}
}
