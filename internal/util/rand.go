package util

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomID returns a hex token of 2*length characters.
func RandomID(length int) string {
	b := make([]byte, length)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
