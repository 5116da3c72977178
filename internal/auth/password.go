package auth

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// HashPassword digests the plaintext concatenated with the salt into a
// fixed-length hex string. Deterministic for any inputs, including empty
// ones; there is no failure mode.
func HashPassword(password, salt string) string {
	sum := sha3.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the digest with the same ordering and compares
// in constant time.
func VerifyPassword(password, salt, digest string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
