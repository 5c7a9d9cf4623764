// Package random wraps crypto/rand for token generation.
package random

import (
	"crypto/rand"
	"io"
)

// Bytes returns n bytes of cryptographically secure random data.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
