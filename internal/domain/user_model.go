package domain

// UserRole is a role record as the backend returns it on user profiles.
type UserRole struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User is a registered account.
type User struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Roles     []UserRole `json:"roles,omitempty"`
}
