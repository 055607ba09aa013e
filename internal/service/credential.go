package service

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the unsalted sha1 hex digest of plaintext.
// The digest format is fixed by the stored-credential contract; see
// DESIGN.md for the known-weakness note.
func HashPassword(plaintext string) string {
	sum := sha1.Sum([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// PasswordMatches recomputes the digest and compares in constant time
func PasswordMatches(plaintext, digest string) bool {
	computed := HashPassword(plaintext)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
