// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the access level an identity has in the system.
type Role string

const (
	// RoleUser indicates a regular participant.
	RoleUser Role = "user"
	// RoleVerified indicates a participant whose account has been verified.
	RoleVerified Role = "verified"
	// RoleReviewer indicates a participant who can review questions and close activities.
	RoleReviewer Role = "reviewer"
	// RoleAdmin indicates full administrative access.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleVerified, RoleReviewer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a set of roles, used to express access policies as data.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for logging and error payloads.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Canned access policies for privileged operations. Handlers and use cases
// reference these constants instead of building ad-hoc role lists.
var (
	// PolicyAdminOnly grants access to administrators only.
	PolicyAdminOnly = Roles{RoleAdmin}
	// PolicyReviewerOrAdmin grants access to reviewers and administrators.
	PolicyReviewerOrAdmin = Roles{RoleAdmin, RoleReviewer}
	// PolicyVerifiedOrAbove grants access to verified participants and higher.
	PolicyVerifiedOrAbove = Roles{RoleAdmin, RoleReviewer, RoleVerified}
)
