package security

import (
	"context"
	"testing"
	"time"

	"enstracker/internal/store"
	"enstracker/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	if err := Init("test-secret"); err != nil {
		panic(err)
	}
}

func seededAuthenticator(t *testing.T, delay time.Duration) *Authenticator {
	t.Helper()
	auth := NewAuthenticator(store.NewMemoryStore(), delay)
	require.NoError(t, auth.Seed("password"))
	return auth
}

func TestLoginSuccess(t *testing.T) {
	auth := seededAuthenticator(t, 0)

	user, token, err := auth.Login(context.Background(), "admin", "password")
	require.NoError(t, err)
	assert.Equal(t, "Admin User", user.Name)
	assert.Equal(t, "IT Manager", user.Role)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "password", user.PasswordHash, "plaintext must never be stored")
}

func TestLoginWrongPassword(t *testing.T) {
	auth := seededAuthenticator(t, 0)

	_, _, err := auth.Login(context.Background(), "admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	auth := seededAuthenticator(t, 0)

	_, _, err := auth.Login(context.Background(), "ghost", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSimulatedLatency(t *testing.T) {
	auth := seededAuthenticator(t, 50*time.Millisecond)

	start := time.Now()
	_, _, err := auth.Login(context.Background(), "admin", "password")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestLoginLatencyHonorsContext(t *testing.T) {
	auth := seededAuthenticator(t, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := auth.Login(ctx, "admin", "password")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestSignupThenLogin(t *testing.T) {
	auth := seededAuthenticator(t, 0)

	user, token, err := auth.Signup(context.Background(), SignupRequest{
		Username: "sarah@example.com",
		Password: "s3cret",
		Name:     "Sarah Connor",
		Role:     "Viewer",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)
	assert.True(t, IsReadOnlyRole(user.Role))

	loggedIn, _, err := auth.Login(context.Background(), "sarah@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestSignupDuplicateUsername(t *testing.T) {
	auth := seededAuthenticator(t, 0)

	_, _, err := auth.Signup(context.Background(), SignupRequest{
		Username: "admin",
		Password: "whatever",
		Name:     "Impostor",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestGenerateJWTRoundTrip(t *testing.T) {
	user := models.User{ID: "u-1", Username: "admin", Name: "Admin User", Role: "IT Manager"}

	token, err := GenerateJWT(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
