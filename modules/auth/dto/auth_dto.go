package dto

import (
	"strings"

	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
	"github.com/dancoopper/COMP3074-MobileApp/modules/auth/entity"
)

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (r *RegisterRequest) Validate() *errors.AppError {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return errors.New(errors.ErrInvalidInput, "a valid email is required")
	}
	if len(r.Password) < 8 {
		return errors.New(errors.ErrInvalidInput, "password must be at least 8 characters")
	}
	if strings.TrimSpace(r.DisplayName) == "" {
		return errors.New(errors.ErrInvalidInput, "display_name is required")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}
