package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"enstracker/internal/store"
	custom_error "enstracker/pkg/errors"
	"enstracker/pkg/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	usersKey       = "ensUsers"
	currentUserKey = "ensCurrentUser"
)

// DefaultLoginDelay stands in for a network round trip on the auth path. The
// wait is context-aware and runs per request, so it never blocks anything
// else.
const DefaultLoginDelay = 600 * time.Millisecond

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

var jwtSecret []byte

// Init sets the JWT signing secret. Must be called before tokens are issued
// or verified.
func Init(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT secret must not be empty")
	}
	jwtSecret = []byte(secret)
	return nil
}

// Authenticator verifies credentials against the locally stored user list.
type Authenticator struct {
	store store.Store
	delay time.Duration
}

func NewAuthenticator(s store.Store, delay time.Duration) *Authenticator {
	return &Authenticator{store: s, delay: delay}
}

// Seed creates the initial admin account when no user list is stored yet.
func (a *Authenticator) Seed(adminPassword string) error {
	admin, err := seedAdmin(adminPassword)
	if err != nil {
		return err
	}
	return store.SeedIfAbsent(a.store, usersKey, []models.User{admin})
}

// Reset is the corruption recovery policy for the user list: log and start
// over with just the seed admin account.
func (a *Authenticator) Reset(adminPassword string, logger *zap.Logger) error {
	admin, err := seedAdmin(adminPassword)
	if err != nil {
		return err
	}
	return store.ResetCorrupt(a.store, usersKey, []models.User{admin}, logger)
}

func seedAdmin(adminPassword string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash seed password: %w", err)
	}

	return models.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		PasswordHash: string(hash),
		Name:         "Admin User",
		Role:         "IT Manager",
		Office:       "Sandton",
	}, nil
}

// Login authenticates username/password and returns the user plus a signed
// token. The simulated latency elapses before any verification happens.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", custom_error.NewValidation("username and password are required")
	}

	if err := a.simulateLatency(ctx); err != nil {
		return nil, "", err
	}

	users, err := a.users()
	if err != nil {
		return nil, "", err
	}

	for i := range users {
		if users[i].Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) != nil {
			return nil, "", ErrInvalidCredentials
		}

		token, err := GenerateJWT(users[i])
		if err != nil {
			return nil, "", err
		}
		if err := a.store.Write(currentUserKey, users[i]); err != nil {
			return nil, "", err
		}
		user := users[i]
		return &user, token, nil
	}

	return nil, "", ErrInvalidCredentials
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
}

// Signup registers a new account and logs it in.
func (a *Authenticator) Signup(ctx context.Context, req SignupRequest) (*models.User, string, error) {
	if req.Username == "" || req.Password == "" || req.Name == "" {
		return nil, "", custom_error.NewValidation("username, password and name are required")
	}

	if err := a.simulateLatency(ctx); err != nil {
		return nil, "", err
	}

	users, err := a.users()
	if err != nil {
		return nil, "", err
	}

	for i := range users {
		if users[i].Username == req.Username {
			return nil, "", ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         req.Role,
		Office:       "HQ",
	}

	users = append(users, user)
	if err := a.store.Write(usersKey, users); err != nil {
		return nil, "", fmt.Errorf("failed to persist user list: %w", err)
	}
	if err := a.store.Write(currentUserKey, user); err != nil {
		return nil, "", err
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

func (a *Authenticator) simulateLatency(ctx context.Context) error {
	if a.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(a.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (a *Authenticator) users() ([]models.User, error) {
	var users []models.User
	if _, err := store.ReadInto(a.store, usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}
