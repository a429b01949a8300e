package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/user-service/pkg/util"
)

const claimsKey = "auth_claims"

// AllowRule is a single allow-list entry. Matching is a literal prefix test
// unless Exact is set, in which case the path must equal the prefix.
type AllowRule struct {
	Prefix string
	Exact  bool
}

// DefaultAllowList enumerates public paths, evaluated in order; the first
// match bypasses authentication entirely.
func DefaultAllowList() []AllowRule {
	return []AllowRule{
		{Prefix: "/api/auth/login"},
		{Prefix: "/login"},
		{Prefix: "/register"},
		{Prefix: "/", Exact: true},
		{Prefix: "/api/auth/register"},
		{Prefix: "/health"},
	}
}

// AccessGate enforces bearer-token authentication. It can run as a global
// pre-handler (Handle), which consults the allow-list, or as an explicit
// per-route guard (Require), which does not. Both share one verification path.
type AccessGate struct {
	tokens    *TokenManager
	allowList []AllowRule
}

// NewAccessGate constructs the gate.
func NewAccessGate(tokens *TokenManager, allowList []AllowRule) *AccessGate {
	return &AccessGate{tokens: tokens, allowList: allowList}
}

// Handle runs once per inbound request, before any route-specific logic.
func (g *AccessGate) Handle(c *fiber.Ctx) error {
	path := c.Path()
	for _, rule := range g.allowList {
		if rule.Exact {
			if path == rule.Prefix {
				return c.Next()
			}
			continue
		}
		if strings.HasPrefix(path, rule.Prefix) {
			return c.Next()
		}
	}
	return g.authenticate(c)
}

// Require guards a single route, with the same semantics as Handle minus the
// allow-list check.
func (g *AccessGate) Require(c *fiber.Ctx) error {
	return g.authenticate(c)
}

func (g *AccessGate) authenticate(c *fiber.Ctx) error {
	token := bearerToken(c.Get("Authorization"))
	if token == "" {
		return apperrors.NewUnauthorized("no token provided")
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return apperrors.NewForbidden("invalid token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// bearerToken extracts the token from an Authorization header. A missing
// header or a scheme other than Bearer yields no token, not an error.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ClaimsFromContext retrieves the decoded claims attached by the gate.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
