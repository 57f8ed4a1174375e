package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"
	"github.com/dancoopper/COMP3074-MobileApp/core/storage"
	authrepo "github.com/dancoopper/COMP3074-MobileApp/modules/auth/repository"
	"github.com/dancoopper/COMP3074-MobileApp/modules/profile/dto"

	"github.com/google/uuid"
)

var allowedAvatarTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *errors.AppError)
	UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, body io.Reader) (*dto.ProfileResponse, *errors.AppError)
}

type ProfileService struct {
	authRepo authrepo.AuthRepositoryInterface
	storage  storage.Storage
}

func NewProfileService(authRepo authrepo.AuthRepositoryInterface, s storage.Storage) *ProfileService {
	return &ProfileService{authRepo: authRepo, storage: s}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError) {
	user, err := s.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("ProfileService:GetProfile", "user_id", userID.String(), "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load profile", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrNotFound, "user not found")
	}

	return &dto.ProfileResponse{
		DisplayName: user.DisplayName,
		Email:       user.Email,
		AvatarURL:   user.AvatarURL,
	}, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *errors.AppError) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	if err := s.authRepo.UpdateProfile(ctx, userID, req.DisplayName, nil); err != nil {
		logger.Error("ProfileService:UpdateProfile", "user_id", userID.String(), "error", err)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to update profile", err)
	}

	return s.GetProfile(ctx, userID)
}

// UploadAvatar stores the image under a per-user key and persists the
// resulting public URL on the user record.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, body io.Reader) (*dto.ProfileResponse, *errors.AppError) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := allowedAvatarTypes[ext]
	if !ok {
		return nil, errors.New(errors.ErrInvalidInput, "avatar must be a jpg, png or webp image")
	}

	key := fmt.Sprintf("avatars/%s/%d%s", userID.String(), time.Now().Unix(), ext)
	url, err := s.storage.Upload(ctx, key, body, contentType)
	if err != nil {
		logger.Error("ProfileService:UploadAvatar", "user_id", userID.String(), "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to upload avatar", err)
	}

	user, err := s.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("ProfileService:UploadAvatar:GetUserByID", "user_id", userID.String(), "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load profile", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrNotFound, "user not found")
	}

	if err := s.authRepo.UpdateProfile(ctx, userID, user.DisplayName, &url); err != nil {
		logger.Error("ProfileService:UploadAvatar:UpdateProfile", "user_id", userID.String(), "error", err)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to save avatar", err)
	}

	return &dto.ProfileResponse{
		DisplayName: user.DisplayName,
		Email:       user.Email,
		AvatarURL:   &url,
	}, nil
}
