package services

import (
	"testing"
	"time"

	"github.com/omarionnn/BigOrders/repository"
	"github.com/omarionnn/BigOrders/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	token, user, err := svc.Register("Alice", "Alice@Example.com ", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.Password)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	token, user, err = svc.Login("alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	_, _, err = svc.Register("Other Alice", "alice@example.com", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc := newAuthService(t)

	_, user, err := svc.Register("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	got, err := svc.Me(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.Me(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
