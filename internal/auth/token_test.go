package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/goods-service/internal/domain"
)

const testSecret = "test-secret"

// signClaims signs arbitrary claims with the test secret, used to build
// tokens Issue would never produce.
func signClaims(t *testing.T, claims *Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err, "signing test claims should succeed")
	return signed
}

func expiredClaims(role string) *Claims {
	return &Claims{
		UserID: "admin-id",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-id",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, expiresAt, err := tm.Issue("admin-id", domain.RoleAdmin)
	assert.NoError(t, err, "issue should succeed")
	assert.True(t, expiresAt.After(time.Now()), "expiry should be in the future")

	claims, err := tm.Verify(token, VerifyOptions{})
	assert.NoError(t, err, "verify should succeed before expiry")
	assert.Equal(t, "admin-id", claims.UserID, "subject should round-trip")
	assert.Equal(t, domain.RoleAdmin, claims.Role, "role should round-trip")
}

func TestVerifyMissingToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	claims, err := tm.Verify("", VerifyOptions{})
	assert.Nil(t, claims, "no claims for an empty token")
	assert.ErrorIs(t, err, ErrTokenMissing, "empty token should be reported as missing, not parsed")
}

func TestVerifyMalformedToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	{
		claims, err := tm.Verify("not-a-jwt", VerifyOptions{})
		assert.Nil(t, claims, "no claims for garbage input")
		assert.ErrorIs(t, err, ErrTokenMalformed, "unparseable token should be malformed")
	}
	{
		token, _, err := tm.Issue("admin-id", domain.RoleAdmin)
		assert.NoError(t, err)
		tampered := token[:len(token)-2] + "xx"
		claims, verifyErr := tm.Verify(tampered, VerifyOptions{})
		assert.Nil(t, claims, "no claims for a tampered signature")
		assert.ErrorIs(t, verifyErr, ErrTokenMalformed, "tampered signature should be malformed")
	}
	{
		other := NewTokenManager("other-secret", 60)
		token, _, err := other.Issue("admin-id", domain.RoleAdmin)
		assert.NoError(t, err)
		claims, verifyErr := tm.Verify(token, VerifyOptions{})
		assert.Nil(t, claims, "no claims for a wrong-secret token")
		assert.ErrorIs(t, verifyErr, ErrTokenMalformed, "wrong secret should be malformed")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)
	token := signClaims(t, expiredClaims(domain.RoleAdmin))

	{
		claims, err := tm.Verify(token, VerifyOptions{})
		assert.Nil(t, claims, "no claims past expiry")
		assert.ErrorIs(t, err, ErrTokenExpired, "expired token should be reported distinctly")
	}
	{
		claims, err := tm.Verify(token, VerifyOptions{IgnoreExpiration: true})
		assert.NoError(t, err, "ignore-expiration should accept an expired token")
		assert.Equal(t, "admin-id", claims.UserID, "claims should still decode")
	}
	{
		tampered := token[:len(token)-2] + "xx"
		_, err := tm.Verify(tampered, VerifyOptions{IgnoreExpiration: true})
		assert.ErrorIs(t, err, ErrTokenMalformed, "ignore-expiration must not skip signature validation")
	}
}

func TestVerifyRoleClaim(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	{
		token, _, err := tm.Issue("someone", "viewer")
		assert.NoError(t, err)
		claims, verifyErr := tm.Verify(token, VerifyOptions{})
		assert.Nil(t, claims, "no claims for a non-admin role")
		assert.ErrorIs(t, verifyErr, ErrPermissionDenied, "non-admin role should be denied")
	}
	{
		token, _, err := tm.Issue("someone", "")
		assert.NoError(t, err)
		_, verifyErr := tm.Verify(token, VerifyOptions{})
		assert.ErrorIs(t, verifyErr, ErrPermissionDenied, "absent role should be denied")
	}
}
