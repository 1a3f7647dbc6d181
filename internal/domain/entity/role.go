// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a caller can act as in the back office.
type Role string

const (
	// RoleBuyer indicates a regular buyer account.
	RoleBuyer Role = "buyer"
	// RoleStore indicates a seller (store) account.
	RoleStore Role = "store"
	// RoleDriver indicates a delivery driver account.
	RoleDriver Role = "driver"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleManager indicates an operations manager with admin-level read access.
	RoleManager Role = "manager"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleStore, RoleDriver, RoleAdmin, RoleManager:
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

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
