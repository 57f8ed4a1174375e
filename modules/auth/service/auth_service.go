package service

import (
	"context"

	"github.com/dancoopper/COMP3074-MobileApp/core/cache"
	"github.com/dancoopper/COMP3074-MobileApp/core/constants"
	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"
	"github.com/dancoopper/COMP3074-MobileApp/core/utils"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/dto"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/entity"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/repository"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, *errors.AppError)
}

type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.Cache
}

func NewAuthService(repo repository.AuthRepositoryInterface, c cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: c}
}

// Register creates an account and signs the user in. Error messages are
// human-readable; credentials never leave this module.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Register:GetUserByEmail", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing account", err)
	}
	if existing != nil {
		return nil, errors.New(errors.ErrAlreadyExists, "an account with this email already exists")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create account", err)
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{
		Email:       req.Email,
		Password:    hashed,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		logger.Error("AuthService:Register:CreateUser", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create account", err)
	}

	logger.Info("AuthService:Register", "user_id", user.ID.String(), "email", user.Email)
	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:GetUserByEmail", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up account", err)
	}
	if user == nil || !utils.ComparePassword(user.Password, req.Password) {
		// Same message for unknown email and wrong password.
		return nil, errors.New(errors.ErrUnauthorized, "invalid email or password")
	}

	logger.Info("AuthService:Login", "user_id", user.ID.String())
	return s.issueTokens(user)
}

// Logout blacklists the presented access token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.New(errors.ErrUnauthorized, "invalid token")
	}

	ttl := utils.TokenRemainingTTL(claims)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:BlacklistToken", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}
	return nil
}

func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("AuthService:GetUser", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load user", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrNotFound, "user not found")
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*dto.AuthResponse, *errors.AppError) {
	access, err := utils.GenerateToken(user.ID, user.Email, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:issueTokens:access", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}
	refresh, err := utils.GenerateToken(user.ID, user.Email, constants.ScopeTokenRefresh)
	if err != nil {
		logger.Error("AuthService:issueTokens:refresh", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}

	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.NewUserResponse(user),
	}, nil
}
