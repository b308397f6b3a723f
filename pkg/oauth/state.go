package oauth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewState returns a cryptographically random anti-forgery state token.
func NewState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
