package domain

import "strings"

// Role is the closed set of roles the backend issues inside identity tokens.
// Unknown role strings are rejected at the decode boundary, never stored.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
	RoleGuest Role = "GUEST"
)

// ParseRole normalizes a raw role claim. Spring-style "ROLE_" prefixes are
// stripped so both "ADMIN" and "ROLE_ADMIN" map to RoleAdmin.
func ParseRole(s string) (Role, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.TrimPrefix(normalized, "ROLE_")
	switch Role(normalized) {
	case RoleAdmin, RoleUser, RoleGuest:
		return Role(normalized), true
	default:
		return "", false
	}
}

// ParseRoles keeps the recognized subset of raw role claims, preserving order
// and dropping duplicates.
func ParseRoles(raw []string) []Role {
	var roles []Role
	for _, s := range raw {
		role, ok := ParseRole(s)
		if !ok {
			continue
		}
		seen := false
		for _, r := range roles {
			if r == role {
				seen = true
				break
			}
		}
		if !seen {
			roles = append(roles, role)
		}
	}
	return roles
}
