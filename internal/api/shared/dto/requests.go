package dto

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/marcosboni7/backsleeping/internal/api/shared/constants"
	apierrors "github.com/marcosboni7/backsleeping/internal/api/shared/errors"
	"github.com/marcosboni7/backsleeping/internal/domain"
)

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the request body
func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if len(r.Username) < constants.MIN_USERNAME_LENGTH || len(r.Username) > constants.MAX_USERNAME_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("username must be between %d and %d characters",
			constants.MIN_USERNAME_LENGTH, constants.MAX_USERNAME_LENGTH))
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apierrors.NewValidationError("invalid email address")
	}
	if len(r.Password) < constants.MIN_PASSWORD_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("password must be at least %d characters",
			constants.MIN_PASSWORD_LENGTH))
	}

	return nil
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the request body
func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if r.Email == "" {
		return apierrors.NewValidationError("email is required")
	}
	if r.Password == "" {
		return apierrors.NewValidationError("password is required")
	}

	return nil
}

// UpdateProfileRequest represents the request body for profile updates.
// Absent fields are left untouched.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
}

// Validate validates the request body
func (r *UpdateProfileRequest) Validate() error {
	if r.Username != nil {
		trimmed := strings.TrimSpace(*r.Username)
		r.Username = &trimmed
		if len(trimmed) < constants.MIN_USERNAME_LENGTH || len(trimmed) > constants.MAX_USERNAME_LENGTH {
			return apierrors.NewValidationError(fmt.Sprintf("username must be between %d and %d characters",
				constants.MIN_USERNAME_LENGTH, constants.MAX_USERNAME_LENGTH))
		}
	}

	return nil
}

// EquipAuraRequest represents the request body for equipping an aura color
type EquipAuraRequest struct {
	Color string `json:"color"`
}

// Validate validates the request body
func (r *EquipAuraRequest) Validate() error {
	if !domain.IsValidHexColor(r.Color) {
		return apierrors.NewValidationError("color must be a #rrggbb hex value")
	}

	return nil
}

// PurchaseRequest represents the request body for a shop purchase
type PurchaseRequest struct {
	ItemID int64 `json:"itemId"`
}

// Validate validates the request body
func (r *PurchaseRequest) Validate() error {
	if r.ItemID <= 0 {
		return apierrors.NewValidationError("itemId is required")
	}

	return nil
}

// FollowRequest represents the request body for follow/unfollow/block operations
type FollowRequest struct {
	TargetID int64 `json:"targetId"`
}

// Validate validates the request body
func (r *FollowRequest) Validate() error {
	if r.TargetID <= 0 {
		return apierrors.NewValidationError("targetId is required")
	}

	return nil
}

// CreateCommentRequest represents the request body for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// Validate validates the request body
func (r *CreateCommentRequest) Validate() error {
	r.Content = strings.TrimSpace(r.Content)

	if r.Content == "" {
		return apierrors.NewValidationError("content is required")
	}
	if len(r.Content) > constants.MAX_COMMENT_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("content must be at most %d characters",
			constants.MAX_COMMENT_LENGTH))
	}

	return nil
}

// RaiseExperienceRequest represents the request body for reporting earned XP
type RaiseExperienceRequest struct {
	XP int64 `json:"xp"`
}

// Validate validates the request body
func (r *RaiseExperienceRequest) Validate() error {
	if r.XP < 0 {
		return apierrors.NewValidationError("xp must not be negative")
	}

	return nil
}

// CreatePostForm represents the multipart form fields for a post upload.
// The video and optional thumbnail files arrive as multipart file parts.
type CreatePostForm struct {
	Title       string
	Description string
}

// Validate validates the form fields
func (f *CreatePostForm) Validate() error {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)

	if len(f.Title) > constants.MAX_POST_TITLE_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("title must be at most %d characters",
			constants.MAX_POST_TITLE_LENGTH))
	}
	if len(f.Description) > constants.MAX_POST_DESCRIPTION_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("description must be at most %d characters",
			constants.MAX_POST_DESCRIPTION_LENGTH))
	}

	return nil
}
