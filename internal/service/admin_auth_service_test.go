package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krupasawant/SoleSense/internal/utils"
)

func newAuthService(t *testing.T) (*AdminAuthService, *fakeSessionStore) {
	t.Helper()
	utils.InitJWT("test-secret", time.Hour)

	admins := &fakeAdminStore{}
	sessions := newFakeSessionStore()
	svc := NewAdminAuthService(admins, sessions, time.Hour)

	require.NoError(t, svc.CreateAdmin(context.Background(), "admin@solesense.shop", "hunter22", "Admin"))
	return svc, sessions
}

func TestLogin(t *testing.T) {
	svc, sessions := newAuthService(t)

	token, err := svc.Login(context.Background(), "admin@solesense.shop", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@solesense.shop", claims.Email)

	// Login records a session keyed by the token ID.
	session, err := svc.CurrentSession(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, session.UserID)
	require.Len(t, sessions.sessions, 1)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, sessions := newAuthService(t)

	_, err := svc.Login(context.Background(), "admin@solesense.shop", "wrong")
	require.Error(t, err)

	_, err = svc.Login(context.Background(), "nobody@solesense.shop", "hunter22")
	require.Error(t, err)

	assert.Empty(t, sessions.sessions)
}

func TestLogout_RevokesSession(t *testing.T) {
	svc, _ := newAuthService(t)

	token, err := svc.Login(context.Background(), "admin@solesense.shop", "hunter22")
	require.NoError(t, err)

	claims, err := utils.ValidateJWT(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims.ID))

	// The token still verifies, but the session is gone, so identity lookups
	// fail and the middleware rejects the request.
	_, err = svc.CurrentSession(context.Background(), claims.ID)
	assert.ErrorIs(t, err, utils.ErrUnauthorized)
}
