package service

import (
	"context"
	"testing"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/config"
	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/dto"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthRepository struct {
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
}

func newFakeAuthRepository() *fakeAuthRepository {
	return &fakeAuthRepository{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[uuid.UUID]*entity.User),
	}
}

func (f *fakeAuthRepository) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	stored := *user
	stored.ID = uuid.New()
	f.byEmail[stored.Email] = &stored
	f.byID[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeAuthRepository) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeAuthRepository) GetUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeAuthRepository) UpdateProfile(_ context.Context, id uuid.UUID, displayName string, avatarURL *string) error {
	if u, ok := f.byID[id]; ok {
		u.DisplayName = displayName
		if avatarURL != nil {
			u.AvatarURL = avatarURL
		}
	}
	return nil
}

type fakeTokenCache struct {
	blacklisted map[string]time.Duration
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{blacklisted: make(map[string]time.Duration)}
}

func (f *fakeTokenCache) BlacklistToken(_ context.Context, token string, ttl time.Duration) error {
	f.blacklisted[token] = ttl
	return nil
}

func (f *fakeTokenCache) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	_, ok := f.blacklisted[token]
	return ok, nil
}

func (f *fakeTokenCache) SetShareSnapshot(_ context.Context, _ string, _ string, _ time.Duration) error {
	return nil
}

func (f *fakeTokenCache) GetShareSnapshot(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

func (f *fakeTokenCache) Close() error { return nil }

func loadTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := config.Load()
	require.NoError(t, err)
}

func TestRegisterAndLogin(t *testing.T) {
	loadTestConfig(t)
	svc := NewAuthService(newFakeAuthRepository(), newFakeTokenCache())
	ctx := context.Background()

	registered, appErr := svc.Register(ctx, &dto.RegisterRequest{
		Email:       "Jane@Example.com",
		Password:    "correct horse",
		DisplayName: "Jane",
	})
	require.Nil(t, appErr)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)
	assert.Equal(t, "jane@example.com", registered.User.Email)

	loggedIn, appErr := svc.Login(ctx, &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct horse",
	})
	require.Nil(t, appErr)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	loadTestConfig(t)
	svc := NewAuthService(newFakeAuthRepository(), newFakeTokenCache())
	ctx := context.Background()

	req := &dto.RegisterRequest{Email: "jane@example.com", Password: "correct horse", DisplayName: "Jane"}
	_, appErr := svc.Register(ctx, req)
	require.Nil(t, appErr)

	_, appErr = svc.Register(ctx, req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestLoginWrongCredentials(t *testing.T) {
	loadTestConfig(t)
	svc := NewAuthService(newFakeAuthRepository(), newFakeTokenCache())
	ctx := context.Background()

	_, appErr := svc.Register(ctx, &dto.RegisterRequest{
		Email: "jane@example.com", Password: "correct horse", DisplayName: "Jane",
	})
	require.Nil(t, appErr)

	_, wrongPassword := svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	require.NotNil(t, wrongPassword)

	_, unknownEmail := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "correct horse"})
	require.NotNil(t, unknownEmail)

	// Indistinguishable outcomes on purpose.
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Message, unknownEmail.Message)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	loadTestConfig(t)
	c := newFakeTokenCache()
	svc := NewAuthService(newFakeAuthRepository(), c)
	ctx := context.Background()

	registered, appErr := svc.Register(ctx, &dto.RegisterRequest{
		Email: "jane@example.com", Password: "correct horse", DisplayName: "Jane",
	})
	require.Nil(t, appErr)

	appErr = svc.Logout(ctx, registered.AccessToken)
	require.Nil(t, appErr)

	blacklisted, err := c.IsTokenBlacklisted(ctx, registered.AccessToken)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	appErr = svc.Logout(ctx, "garbage")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestGetUser(t *testing.T) {
	loadTestConfig(t)
	svc := NewAuthService(newFakeAuthRepository(), newFakeTokenCache())
	ctx := context.Background()

	registered, appErr := svc.Register(ctx, &dto.RegisterRequest{
		Email: "jane@example.com", Password: "correct horse", DisplayName: "Jane",
	})
	require.Nil(t, appErr)

	user, appErr := svc.GetUser(ctx, uuid.MustParse(registered.User.ID))
	require.Nil(t, appErr)
	assert.Equal(t, "Jane", user.DisplayName)

	_, appErr = svc.GetUser(ctx, uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
