// Package token issues the opaque capability tokens handed to customers.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const byteLength = 32

// Generate returns 32 random bytes encoded as unpadded URL-safe base64.
func Generate() (string, error) {
	buf := make([]byte, byteLength)

	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
