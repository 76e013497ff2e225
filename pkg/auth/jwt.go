package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lakeside/hotel-client/internal/domain"
)

// Claims is the payload of a backend-issued identity token. Older backends
// put a single "role" string in the token, newer ones a "roles" array; both
// are accepted and folded together by RoleSet.
type Claims struct {
	Email string   `json:"email,omitempty"`
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Decode parses a bearer token without verifying its signature. The client
// never holds the signing secret; the backend is the verifier. A failed parse
// means the stored token is garbage, not that it is forged.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeToken, err)
	}
	return claims, nil
}

// SubjectID is the user identifier the backend put in the token.
func (c *Claims) SubjectID() string {
	return c.Subject
}

// RoleSet returns the recognized roles carried by the token.
func (c *Claims) RoleSet() []domain.Role {
	raw := c.Roles
	if len(raw) == 0 && c.Role != "" {
		raw = []string{c.Role}
	}
	return domain.ParseRoles(raw)
}

// HasRole reports whether the token carries the given role.
func (c *Claims) HasRole(role domain.Role) bool {
	for _, r := range c.RoleSet() {
		if r == role {
			return true
		}
	}
	return false
}
