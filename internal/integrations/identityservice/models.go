package identityservice

// Role is the explicit role carried by a user profile.
type Role string

const (
	RoleClient   Role = "client"
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// ParseRole validates a role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleEmployee, RoleManager:
		return Role(s), true
	default:
		return "", false
	}
}

// User is an account as reported by the identity service. Role is nil when
// the account has no profile yet — a distinct state, not an error.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     *Role  `json:"role,omitempty"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	return u.Role != nil && *u.Role == role
}

// Employee is one member of the schedulable grooming staff.
type Employee struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
