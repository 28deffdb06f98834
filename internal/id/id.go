// Package id generates opaque identifiers for banks, sessions and questions.
package id

import "crypto/rand"

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	length   = 16
)

// GenerateID returns a random lowercase alphanumeric identifier. Identifiers
// are URL-safe and used directly as path segments.
func GenerateID() string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = alphabet[b[i]%byte(len(alphabet))]
	}
	return string(b)
}
