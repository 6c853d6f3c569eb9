package model

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Role of the invoking principal, as asserted by the upstream
// authorization layer.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Scope is the caller's visibility, resolved by the auth middleware
// before any engine operation runs. The engine performs no authorization
// itself; it only narrows queries to this scope.
type Scope struct {
	OrganizationID string
	UserID         string
	Role           Role

	// PersonIDs restricts staff-role callers to their linked persons.
	// Empty means organization-wide visibility.
	PersonIDs []string
}

// VisiblePersons returns the person-level restriction to apply to
// queries, or nil for organization-wide visibility.
func (s Scope) VisiblePersons() []string {
	if s.Role == RoleStaff && len(s.PersonIDs) > 0 {
		return s.PersonIDs
	}
	return nil
}
