package middleware

import (
	"strings"

	"unique-travel/constants"
	"unique-travel/services/role"
	"unique-travel/services/token"

	"github.com/gofiber/fiber/v2"
)

// ClaimsEmailKey is the locals key the middleware stores the verified
// claim email under.
const ClaimsEmailKey = "claimsEmail"

// Auth builds the request gates. Dependencies are injected explicitly so
// role changes flow through whatever Directory the caller wires in.
type Auth struct {
	tokens *token.Service
	roles  role.Directory
}

func NewAuth(tokens *token.Service, roles role.Directory) *Auth {
	return &Auth{tokens: tokens, roles: roles}
}

// authenticate extracts and verifies the bearer token without advancing the
// chain. Returns the claim email and whether verification succeeded.
func (a *Auth) authenticate(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", false
	}

	claims, err := a.tokens.Verify(tokenParts[1])
	if err != nil {
		return "", false
	}
	return claims.Email, true
}

// RequireAuth verifies the bearer token and attaches the claim email to the
// request context. Missing or bad tokens halt the chain with 403.
func (a *Auth) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := a.authenticate(c)
		if !ok {
			return forbidden(c)
		}
		c.Locals(ClaimsEmailKey, email)
		return c.Next()
	}
}

// RequireAdmin gates a route to admin users. The role is looked up fresh on
// every request rather than trusted from the token.
func (a *Auth) RequireAdmin() fiber.Handler {
	return a.requireRole(constants.RoleAdmin)
}

// RequireTourGuide gates a route to tour guides.
func (a *Auth) RequireTourGuide() fiber.Handler {
	return a.requireRole(constants.RoleTourGuide)
}

func (a *Auth) requireRole(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := a.authenticate(c)
		if !ok {
			return forbidden(c)
		}

		storedRole, err := a.roles.RoleOf(email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "failed to resolve user role",
			})
		}
		if storedRole != required {
			return forbidden(c)
		}

		c.Locals(ClaimsEmailKey, email)
		return c.Next()
	}
}

// ClaimsEmail returns the verified email attached by RequireAuth.
func ClaimsEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(ClaimsEmailKey).(string)
	return email
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"message": "forbidden access",
	})
}
