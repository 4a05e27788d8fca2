// Package id produces short random identifiers for correlating
// background jobs and request-scoped artifacts in logs.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const randomBytes = 8

// New returns a 16-character lowercase hex identifier.
func New() (string, error) {
	buf := make([]byte, randomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
