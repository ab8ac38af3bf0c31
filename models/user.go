package models

// User is a diner account. The account list is an in-process mock seeded at
// startup; signup appends to it for the life of the process.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// AuthUser is the public projection of a User returned to clients.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Public returns the client-safe projection of u.
func (u User) Public() AuthUser {
	return AuthUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
