// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a person can have in the system.
type Role string

const (
	// RoleUser indicates a regular member looking for a match.
	RoleUser Role = "user"
	// RoleMatchmaker indicates agency staff who validate profiles and run searches.
	RoleMatchmaker Role = "matchmaker"
	// RoleManager indicates an agency manager.
	RoleManager Role = "manager"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleMatchmaker, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role belongs to agency staff.
func (r Role) IsStaff() bool {
	switch r {
	case RoleMatchmaker, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
