package dto

import (
	"time"

	"github.com/marcosboni7/backsleeping/internal/domain"
	"github.com/marcosboni7/backsleeping/internal/store"
	"github.com/marcosboni7/backsleeping/internal/store/schema"
)

// AccountResponse is the public view of an account
type AccountResponse struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Balance   int64       `json:"balance"`
	XP        int64       `json:"xp"`
	Role      domain.Role `json:"role"`
	AuraColor string      `json:"aura_color"`
	AvatarURL string      `json:"avatar_url"`
	CreatedAt time.Time   `json:"created_at"`
}

// MapAccountToDTO converts an account row to its public view
func MapAccountToDTO(account *schema.Account) *AccountResponse {
	return &AccountResponse{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		Balance:   account.Balance,
		XP:        account.XP,
		Role:      account.Role,
		AuraColor: account.AuraColor,
		AvatarURL: account.AvatarURL,
		CreatedAt: account.CreatedAt,
	}
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string           `json:"token"`
	User  *AccountResponse `json:"user"`
}

// ProfileResponse is an account joined with its follow-graph counters
type ProfileResponse struct {
	*AccountResponse
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// PurchaseResponse is returned by a successful shop purchase
type PurchaseResponse struct {
	User *AccountResponse `json:"user"`
}

// PostResponse is returned after creating a post
type PostResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// MapPostToDTO converts a post row to its response form
func MapPostToDTO(post *schema.Post) *PostResponse {
	return &PostResponse{
		ID:           post.ID,
		UserID:       post.AccountID,
		Title:        post.Title,
		Description:  post.Description,
		VideoURL:     post.VideoURL,
		ThumbnailURL: post.ThumbnailURL,
		CreatedAt:    post.CreatedAt,
	}
}

// EventResponse is a hashtag challenge with its ranked posts
type EventResponse struct {
	Event *schema.Event    `json:"event"`
	Posts []store.FeedPost `json:"posts"`
}
