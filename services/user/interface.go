// File: services/user/interface.go
package user

import (
	"context"

	"tablescout/models"
)

// AuthResponse is returned on successful sign-in or sign-up.
type AuthResponse struct {
	User  models.AuthUser `json:"user"`
	Token string          `json:"token"`
}

// UserService is the mock account and session layer. Accounts live in a
// fixed in-process credential list seeded at startup; only the session
// identity record leaves process memory (see SessionStore).
type UserService interface {
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*AuthResponse, error)
	Logout(ctx context.Context, userID string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
}
