package entity

// Role determines which operations a user is permitted to perform.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleDoctor  Role = "DOCTOR"
	RolePatient Role = "PATIENT"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

// Authorities returns the authority names granted by the role.
// Pure function of the role value, no lookup against the store.
func (r Role) Authorities() []string {
	return []string{string(r)}
}

// HasAnyRole reports whether role is contained in allowed.
func HasAnyRole(role Role, allowed ...Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
