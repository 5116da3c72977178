package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/goods-service/internal/domain"
)

// Verification failure kinds. The gate collapses most of these into a
// single externally visible outcome; expiry stays distinct so clients know
// to re-authenticate instead of retrying with other credentials.
var (
	ErrTokenMissing     = errors.New("token missing")
	ErrTokenMalformed   = errors.New("token malformed")
	ErrTokenExpired     = errors.New("token expired")
	ErrPermissionDenied = errors.New("permission denied")
)

// Claims describes the JWT payload carried by issued tokens.
type Claims struct {
	UserID string `json:"userID"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Issue builds and signs a token for the subject carrying the given role.
func (tm *TokenManager) Issue(userID, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyOptions tweaks verification behavior.
type VerifyOptions struct {
	// IgnoreExpiration skips the expiry check. Signature validation always
	// runs.
	IgnoreExpiration bool
}

// Verify validates the token signature, expiry and role claim, returning
// the decoded claims on success.
func (tm *TokenManager) Verify(tokenStr string, opts VerifyOptions) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrTokenMissing
	}

	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if opts.IgnoreExpiration {
		parserOpts = append(parserOpts, jwt.WithoutClaimsValidation())
	}
	parser := jwt.NewParser(parserOpts...)

	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !parsed.Valid {
		return nil, ErrTokenMalformed
	}

	if claims.Role != domain.RoleAdmin {
		return nil, ErrPermissionDenied
	}
	return claims, nil
}
