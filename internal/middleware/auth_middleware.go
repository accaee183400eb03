package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/nocv-se/nocv-backend/internal/config"
	"github.com/nocv-se/nocv-backend/internal/util"
)

const authContextKey = "auth"

// AuthContext is what a validated bearer token resolves to.
type AuthContext struct {
	UserID string
	Role   string
}

type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAuth validates the Authorization bearer token and stores the caller
// identity in the request locals. Recruiters and admins share the same
// surface; the role only matters for draft previews.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "inloggning krävs",
			})
		}

		claims := &authClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(config.LoadJWTConfig().Secret), nil
		})
		if err != nil || !parsed.Valid {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "ogiltig eller utgången token",
			}, err)
		}

		c.Locals(authContextKey, AuthContext{
			UserID: claims.Subject,
			Role:   claims.Role,
		})
		return c.Next()
	}
}

// OptionalAuth resolves a bearer token when one is present but lets the
// request through either way. Used on the share-link routes so recruiters can
// preview drafts while anonymous visitors still hit the publish gate.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Next()
		}

		claims := &authClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(config.LoadJWTConfig().Secret), nil
		})
		if err == nil && parsed.Valid {
			c.Locals(authContextKey, AuthContext{
				UserID: claims.Subject,
				Role:   claims.Role,
			})
		}
		return c.Next()
	}
}

// Auth returns the identity stored by RequireAuth, or a zero value on the
// public paths.
func Auth(c *fiber.Ctx) AuthContext {
	if auth, ok := c.Locals(authContextKey).(AuthContext); ok {
		return auth
	}
	return AuthContext{}
}

// IsAdmin reports whether the caller may see unpublished presentations.
func IsAdmin(c *fiber.Ctx) bool {
	role := Auth(c).Role
	return role == "admin" || role == "recruiter"
}
