package model

// UserRole user role
type UserRole string

const (
	// RoleAdmin moderates the pending queue
	RoleAdmin UserRole = "admin"
	// RoleAuthor writes and manages own posts
	RoleAuthor UserRole = "author"
	// RoleReader read-only access plus bookmarks
	RoleReader UserRole = "reader"
)

// Valid whether r is one of the enumerated roles
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleAuthor, RoleReader:
		return true
	default:
		return false
	}
}

// User blog users
type User struct {
	// ID unique identifier for the user
	ID string `json:"id"`
	// Name display name
	Name string `json:"name"`
	// Username login account
	Username string `json:"username"`
	// Role user role
	Role UserRole `json:"role"`
	// Avatar avatar url
	Avatar string `json:"avatar"`
}

// IsAdmin is admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanWrite whether the user may author posts
func (u *User) CanWrite() bool {
	return u.Role == RoleAdmin || u.Role == RoleAuthor
}
