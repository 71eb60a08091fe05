package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewToken returns a 256-bit random token in URL-safe base64. The token
// is the only thing the client ever holds; all identity lives server-side.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
