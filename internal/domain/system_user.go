package domain

// RoleAdmin is the only role the service ever issues or accepts.
const RoleAdmin = "admin"

// SystemUser is the administrative credential record. Exactly one exists,
// keyed by the configured admin ID, seeded at startup.
type SystemUser struct {
	ID           string
	Account      string
	PasswordHash string
}
