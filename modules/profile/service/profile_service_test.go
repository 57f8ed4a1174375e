package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/entity"
	"github.com/dancoopper/COMP3074-MobileApp/modules/profile/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserStore(users ...*entity.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id uuid.UUID, displayName string, avatarURL *string) error {
	if u, ok := f.users[id]; ok {
		u.DisplayName = displayName
		if avatarURL != nil {
			u.AvatarURL = avatarURL
		}
	}
	return nil
}

type fakeObjectStorage struct {
	uploads map[string]string
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{uploads: make(map[string]string)}
}

func (f *fakeObjectStorage) Upload(_ context.Context, key string, body io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.uploads[key] = string(data)
	return "https://cdn.example.com/" + key, nil
}

func TestGetAndUpdateProfile(t *testing.T) {
	userID := uuid.New()
	store := newFakeUserStore(&entity.User{ID: userID, Email: "jane@example.com", DisplayName: "Jane"})
	svc := NewProfileService(store, newFakeObjectStorage())
	ctx := context.Background()

	profile, appErr := svc.GetProfile(ctx, userID)
	require.Nil(t, appErr)
	assert.Equal(t, "Jane", profile.DisplayName)
	assert.Equal(t, "jane@example.com", profile.Email)

	updated, appErr := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{DisplayName: "  Jane D.  "})
	require.Nil(t, appErr)
	assert.Equal(t, "Jane D.", updated.DisplayName)

	_, appErr = svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{DisplayName: "   "})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	_, appErr = svc.GetProfile(ctx, uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestUploadAvatar(t *testing.T) {
	userID := uuid.New()
	store := newFakeUserStore(&entity.User{ID: userID, Email: "jane@example.com", DisplayName: "Jane"})
	objects := newFakeObjectStorage()
	svc := NewProfileService(store, objects)
	ctx := context.Background()

	profile, appErr := svc.UploadAvatar(ctx, userID, "me.PNG", strings.NewReader("img-bytes"))
	require.Nil(t, appErr)
	require.NotNil(t, profile.AvatarURL)
	assert.Contains(t, *profile.AvatarURL, "avatars/"+userID.String()+"/")
	assert.Len(t, objects.uploads, 1)

	// Persisted on the user record.
	stored, _ := store.GetUserByID(ctx, userID)
	assert.Equal(t, profile.AvatarURL, stored.AvatarURL)
}

func TestUploadAvatarRejectsUnknownType(t *testing.T) {
	userID := uuid.New()
	svc := NewProfileService(newFakeUserStore(&entity.User{ID: userID}), newFakeObjectStorage())

	_, appErr := svc.UploadAvatar(context.Background(), userID, "notes.txt", strings.NewReader("x"))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}
