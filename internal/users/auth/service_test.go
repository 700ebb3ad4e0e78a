// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzalesak/periodika/internal/platform/apperr"
	"github.com/mzalesak/periodika/internal/platform/sec"
	"github.com/mzalesak/periodika/internal/users/auth"
)

// fakeUserRepository is an in-memory UserRepository for service tests.
type fakeUserRepository struct {
	users map[string]*auth.User // keyed by ID
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*auth.User{}}
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range f.users {
		if user.Email == email && user.IsActive {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range f.users {
		if user.Username == username && user.IsActive {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) Update(_ context.Context, user *auth.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	if user, ok := f.users[userID]; ok {
		user.PasswordHash = newHash
		return nil
	}
	return apperr.NotFound("User")
}

func (f *fakeUserRepository) Deactivate(_ context.Context, id string) error {
	if user, ok := f.users[id]; ok {
		user.IsActive = false
		return nil
	}
	return apperr.NotFound("User")
}

// fakeSessionRepository mirrors the Redis semantics: absent keys surface
// as SessionExpired, revocation is idempotent.
type fakeSessionRepository struct {
	sessions map[string]*auth.Session // keyed by token hash
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]*auth.Session{}}
}

func (f *fakeSessionRepository) Create(_ context.Context, session *auth.Session) error {
	f.sessions[session.TokenHash] = session
	return nil
}

func (f *fakeSessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	if session, ok := f.sessions[tokenHash]; ok {
		return session, nil
	}
	return nil, apperr.SessionExpired()
}

func (f *fakeSessionRepository) Revoke(_ context.Context, tokenHash string) error {
	delete(f.sessions, tokenHash)
	return nil
}

func (f *fakeSessionRepository) RevokeAll(_ context.Context, userID string) error {
	for hash, session := range f.sessions {
		if session.UserID == userID {
			delete(f.sessions, hash)
		}
	}
	return nil
}

// fakeTokenProvider issues predictable access tokens.
type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "jwt-for-" + userID, nil
}

func newTestService(t *testing.T) (*auth.Service, *fakeUserRepository, *fakeSessionRepository) {
	t.Helper()
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	service := auth.NewService(users, sessions, fakeTokenProvider{})
	return service, users, sessions
}

func seedUser(t *testing.T, users *fakeUserRepository, password string) *auth.User {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	user := &auth.User{
		ID:           "user-1",
		Username:     "katalogizator",
		Email:        "katalog@archive.example",
		PasswordHash: hash,
		DisplayName:  "Katalogizátor",
		Role:         sec.RoleEditor,
		IsActive:     true,
	}
	users.users[user.ID] = user
	return user
}

func TestService_Login(t *testing.T) {
	service, users, sessions := newTestService(t)
	user := seedUser(t, users, "letmein-please")

	session, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "katalog@archive.example",
		Password: "letmein-please",
	})
	require.NoError(t, err)

	assert.Equal(t, "jwt-for-user-1", session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, user.ID, session.User.ID)

	// The tracking session must be stored under the token hash, never the raw token.
	_, rawStored := sessions.sessions[session.RefreshToken]
	assert.False(t, rawStored)
	_, hashStored := sessions.sessions[sec.HashToken(session.RefreshToken)]
	assert.True(t, hashStored)
}

func TestService_Login_ByUsername(t *testing.T) {
	service, users, _ := newTestService(t)
	seedUser(t, users, "letmein-please")

	session, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "katalogizator",
		Password: "letmein-please",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.User.ID)
}

func TestService_Login_BadCredentials(t *testing.T) {
	service, users, _ := newTestService(t)
	seedUser(t, users, "letmein-please")

	tests := []struct {
		name  string
		login string
		pass  string
	}{
		{"wrong_password", "katalogizator", "not-the-password"},
		{"unknown_user", "ghost", "letmein-please"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), auth.LoginInput{Login: tc.login, Password: tc.pass})
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "UNAUTHORIZED", appError.Code)
		})
	}
}

func TestService_RefreshSession_Rotates(t *testing.T) {
	service, users, sessions := newTestService(t)
	seedUser(t, users, "letmein-please")

	first, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "katalogizator",
		Password: "letmein-please",
	})
	require.NoError(t, err)

	second, err := service.RefreshSession(context.Background(), first.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The rotated-out token must be dead: replaying it reports an expired session.
	_, err = service.RefreshSession(context.Background(), first.RefreshToken, "", "")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "SESSION_EXPIRED", appError.Code)

	// Exactly one live session remains.
	assert.Len(t, sessions.sessions, 1)
}

func TestService_Logout_Idempotent(t *testing.T) {
	service, users, sessions := newTestService(t)
	seedUser(t, users, "letmein-please")

	session, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "katalogizator",
		Password: "letmein-please",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	assert.Empty(t, sessions.sessions)

	// A second logout with the same token is still a success.
	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
}

func TestService_ChangePassword_RevokesSessions(t *testing.T) {
	service, users, sessions := newTestService(t)
	user := seedUser(t, users, "letmein-please")

	_, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "katalogizator",
		Password: "letmein-please",
	})
	require.NoError(t, err)
	require.Len(t, sessions.sessions, 1)

	err = service.ChangePassword(context.Background(), user.ID, "letmein-please", "a-brand-new-secret")
	require.NoError(t, err)

	// All devices must sign in again with the new password.
	assert.Empty(t, sessions.sessions)
	assert.True(t, sec.CheckPasswordHash("a-brand-new-secret", users.users[user.ID].PasswordHash))
}

func TestService_ChangePassword_WrongCurrent(t *testing.T) {
	service, users, _ := newTestService(t)
	user := seedUser(t, users, "letmein-please")

	err := service.ChangePassword(context.Background(), user.ID, "not-the-password", "whatever")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

func TestService_CreateUser(t *testing.T) {
	service, users, _ := newTestService(t)

	created, err := service.CreateUser(context.Background(), auth.CreateUserInput{
		Username:    "spravce",
		Email:       "spravce@archive.example",
		Password:    "initial-secret",
		DisplayName: "Správce fondu",
		Role:        sec.RoleAdmin,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, sec.RoleAdmin, created.Role)
	assert.NotEqual(t, "initial-secret", created.PasswordHash)

	// Provisioning the same identity again must report a conflict.
	_, err = service.CreateUser(context.Background(), auth.CreateUserInput{
		Username: "spravce",
		Email:    "spravce@archive.example",
		Password: "initial-secret",
		Role:     sec.RoleMember,
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)

	// The account survived in storage despite the failed duplicate.
	_, persisted := users.users[created.ID]
	assert.True(t, persisted)
}

func TestService_Login_DeactivatedAccount(t *testing.T) {
	service, users, _ := newTestService(t)
	user := seedUser(t, users, "letmein-please")
	user.IsActive = false

	_, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "katalogizator",
		Password: "letmein-please",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}
