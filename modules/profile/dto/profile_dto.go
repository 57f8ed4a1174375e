package dto

import (
	"strings"

	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
)

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

func (r *UpdateProfileRequest) Validate() *errors.AppError {
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	if r.DisplayName == "" {
		return errors.New(errors.ErrInvalidInput, "display_name is required")
	}
	return nil
}

type ProfileResponse struct {
	DisplayName string  `json:"display_name"`
	Email       string  `json:"email"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}
