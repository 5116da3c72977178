package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/goods-service/pkg/response"
)

const claimsKey = "auth_claims"

// Gate authenticates protected routes using the Authorization header. It
// performs no I/O; store lookups belong to the handlers behind it.
type Gate struct {
	tokens *TokenManager
}

// NewGate constructs the gate.
func NewGate(tokens *TokenManager) *Gate {
	return &Gate{tokens: tokens}
}

// Handle verifies the bearer token and stores the decoded claims for the
// downstream handler. Missing, malformed and wrong-role tokens all produce
// the same invalid-credential envelope so the cause is not observable;
// only expiry is reported distinctly.
func (g *Gate) Handle(c *fiber.Ctx) error {
	claims, err := g.tokens.Verify(extractToken(c.Get(fiber.HeaderAuthorization)), VerifyOptions{})
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return c.JSON(response.Fail(response.KindTokenExpired))
		}
		return c.JSON(response.Fail(response.KindInvalidAccountOrPassword))
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// extractToken accepts both a raw token and the "Bearer <token>" form.
func extractToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return header
}

// ClaimsFromContext retrieves the verified claims placed by the gate.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	return claims, ok
}
