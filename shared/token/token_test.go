package token_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue/shared/token"
)

func TestGenerate(t *testing.T) {
	tok, err := token.Generate()
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
	assert.NotContains(t, tok, "=")
}

func TestGenerate_Unique(t *testing.T) {
	const trials = 10000

	seen := make(map[string]struct{}, trials)

	for range trials {
		tok, err := token.Generate()
		require.NoError(t, err)

		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %s", tok)

		seen[tok] = struct{}{}
	}
}
