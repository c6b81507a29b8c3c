package auth

import apperrors "carzone/internal/errors"

// Role is the closed set of roles a user can hold. Unknown role strings are
// rejected at the registration boundary instead of being persisted.
type Role string

const (
	// RoleAdmin grants access to user administration endpoints.
	RoleAdmin Role = "admin"
	// RoleUser is the default role for registered users.
	RoleUser Role = "user"
)

// ParseRole validates a raw role string against the closed enumeration.
// An empty string falls back to RoleUser.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleUser:
		return Role(raw), nil
	case "":
		return RoleUser, nil
	default:
		return "", apperrors.ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
