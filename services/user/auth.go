// File: services/user/auth.go
package user

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tablescout/models"
	"tablescout/utils"
)

const defaultSessionTTL = 12 * time.Hour

// DefaultUserService implements UserService over an in-process credential
// list. Sign-up appends to the list for the life of the process; nothing but
// the session record survives a restart.
type DefaultUserService struct {
	Sessions SessionStore
	Logger   *zap.Logger

	// SessionTTL overrides how long a session record lives; zero means
	// defaultSessionTTL.
	SessionTTL time.Duration

	mu    sync.Mutex
	users []models.User
}

// NewDefaultUserService constructs the service with the seeded mock
// credential list.
func NewDefaultUserService(sessions SessionStore, logger *zap.Logger) *DefaultUserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultUserService{
		Sessions: sessions,
		Logger:   logger,
		users:    SeedUsers(),
	}
}

// SeedUsers returns the mock account list.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:           "user-1",
			Email:        "user@example.com",
			Name:         "John Doe",
			PasswordHash: mustHash("password"),
		},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	return string(hash)
}

func (s *DefaultUserService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return defaultSessionTTL
}

// Authenticate verifies the credentials, issues a JWT and records the
// session identity.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	account, ok := s.findByEmail(email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.openSession(account)
}

// Register creates a new account and signs it in. The email must be unused.
func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	s.mu.Lock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			s.mu.Unlock()
			return nil, ErrEmailTaken
		}
	}
	account := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: mustHash(password),
	}
	s.users = append(s.users, account)
	s.mu.Unlock()

	s.Logger.Info("account created", zap.String("userId", account.ID))
	return s.openSession(account)
}

// Logout drops the session identity record.
func (s *DefaultUserService) Logout(ctx context.Context, userID string) error {
	return s.Sessions.Delete(ctx, userID)
}

// GetByID looks up an account in the credential list.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *DefaultUserService) findByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// openSession issues the token and stores the session keyed by user ID:
// one active session per account, so a new sign-in replaces the old one.
func (s *DefaultUserService) openSession(account models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(account.ID, account.Email, s.sessionTTL())
	if err != nil {
		return nil, err
	}

	session := utils.AuthSession{
		UserID:    account.ID,
		Email:     account.Email,
		Name:      account.Name,
		TokenHash: utils.HashToken(token),
		CreatedAt: time.Now(),
	}
	if err := s.Sessions.Save(context.Background(), account.ID, session); err != nil {
		return nil, err
	}

	s.Logger.Info("session opened", zap.String("userId", account.ID))
	return &AuthResponse{User: account.Public(), Token: token}, nil
}
