package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	{
		digest := HashPassword("admin", "s1")
		assert.Len(t, digest, 64, "digest should be fixed-length hex")
		assert.Equal(t, digest, HashPassword("admin", "s1"), "digest should be deterministic")
	}
	{
		assert.NotEqual(t, HashPassword("admin", "s1"), HashPassword("admin", "s2"), "salt should change the digest")
		assert.NotEqual(t, HashPassword("admin", "s1"), HashPassword("other", "s1"), "plaintext should change the digest")
	}
	{
		digest := HashPassword("", "")
		assert.Len(t, digest, 64, "empty inputs should still produce a digest")
		assert.Equal(t, digest, HashPassword("", ""), "empty-input digest should be deterministic")
	}
	{
		// Ordering matters: plaintext first, then salt.
		assert.NotEqual(t, HashPassword("ab", "c"), HashPassword("a", "bc"), "concatenation boundary should be fixed by argument order")
	}
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("admin", "s1")
	{
		assert.True(t, VerifyPassword("admin", "s1", digest), "matching plaintext and salt should verify")
	}
	{
		assert.False(t, VerifyPassword("wrong", "s1", digest), "wrong plaintext should not verify")
		assert.False(t, VerifyPassword("admin", "s2", digest), "wrong salt should not verify")
		assert.False(t, VerifyPassword("admin", "s1", digest+"00"), "wrong digest should not verify")
	}
}
