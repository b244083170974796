package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoply/server/internal/auth"
	"github.com/shoply/server/internal/services"
)

const testSecret = "test-secret"

func newAuthService(users *fakeUserRepo) *services.AuthService {
	return services.NewAuthService(users, nil, testSecret)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	for _, tc := range []struct{ username, email, password string }{
		{"", "a@b.com", "secret123"},
		{"alice", "", "secret123"},
		{"alice", "a@b.com", ""},
	} {
		_, _, err := svc.Register(context.Background(), tc.username, tc.email, tc.password, "")
		require.ErrorIs(t, err, services.ErrMissingFields)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, _, err := svc.Register(context.Background(), "alice", "a@b.com", "secret123", "")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "someone else", "a@b.com", "другой", "")
	require.ErrorIs(t, err, services.ErrEmailTaken)
	require.Len(t, users.users, 1)
}

func TestRegisterHashesPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	public, token, err := svc.Register(context.Background(), "alice", "a@b.com", "secret123", "")
	require.NoError(t, err)
	require.Equal(t, "alice", public.Username)
	require.Equal(t, "User", public.Role)

	stored, err := users.FindByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))

	// The issued token carries the public projection, never the password.
	claims, err := auth.ParseToken([]byte(testSecret), token)
	require.NoError(t, err)
	require.Equal(t, public.ID, claims.User.ID)
	require.Equal(t, "a@b.com", claims.User.Email)
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, _, err := svc.Register(context.Background(), "alice", "a@b.com", "secret123", "Admin")
	require.NoError(t, err)

	public, token, err := svc.Login(context.Background(), "a@b.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "Admin", public.Role)
	require.NotEmpty(t, token)

	_, _, err = svc.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@b.com", "secret123")
	require.ErrorIs(t, err, services.ErrNotFound)

	_, _, err = svc.Login(context.Background(), "", "secret123")
	require.ErrorIs(t, err, services.ErrMissingFields)
}

func TestGetUserInvalidID(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.GetUser(context.Background(), "not-a-hex-id")
	require.ErrorIs(t, err, services.ErrInvalidID)
}

func TestUpdateAvatar(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	public, _, err := svc.Register(context.Background(), "alice", "a@b.com", "secret123", "")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateAvatar(context.Background(), public.ID, "avatar.png"))

	stored, err := svc.GetUser(context.Background(), public.ID)
	require.NoError(t, err)
	require.Equal(t, "avatar.png", stored.Avatar)
}
