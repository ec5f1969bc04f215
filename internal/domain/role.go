package domain

// Role is the active UI mode. It selects the display identity attached to
// new tickets and comments and grants nothing.
type Role string

const (
	RoleUser    Role = "user"
	RoleSupport Role = "support"
)

// Identity is the display name and avatar initials of a commenter or reporter.
type Identity struct {
	User   string
	Avatar string
}

var roleIdentities = map[Role]Identity{
	RoleUser:    {User: "Usuario Actual", Avatar: "UC"},
	RoleSupport: {User: "Agente de Soporte", Avatar: "AS"},
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleIdentities[r]
	return ok
}

// Identity returns the display identity for r, falling back to the user role.
func (r Role) Identity() Identity {
	if id, ok := roleIdentities[r]; ok {
		return id
	}
	return roleIdentities[RoleUser]
}
