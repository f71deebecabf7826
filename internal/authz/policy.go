package authz

import "strings"

// Identity is the authenticated caller as established by the token
// middleware: the token subject resolved against the user store.
type Identity struct {
	ID   string
	Name string
	Role string
}

const (
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// Authorize decides whether the caller may act on the employee scope named
// in the request path. HR is a global admin for every employee-scoped
// resource. Employees may only enter their own scope.
//
// The path pair is a display claim, not the security boundary: lifecycle
// services additionally key every ownership check on Identity.ID, so two
// employees sharing a display name can never reach each other's records.
func Authorize(caller Identity, claimedName, claimedRole string) bool {
	switch strings.ToLower(caller.Role) {
	case RoleHR:
		return true
	case RoleEmployee:
		return strings.EqualFold(caller.Name, claimedName) &&
			strings.EqualFold(claimedRole, RoleEmployee)
	default:
		return false
	}
}
