package models

// UserRole separates the permanent super-administrator from staff accounts
// created through the backoffice, which are always managers.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
)

// User is a staff account. Password holds a bcrypt hash, never clear text.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      UserRole `json:"role"`
	CreatedAt int64    `json:"createdAt"`
}

// Sanitized returns a copy with the password hash stripped, safe to send
// to clients.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
