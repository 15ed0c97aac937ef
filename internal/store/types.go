package store

import (
	"time"

	"github.com/marcosboni7/backsleeping/internal/domain"
)

// CreateAccountInput holds the fields required to register an account
type CreateAccountInput struct {
	Username     string
	Email        string
	PasswordHash string
	// StartingBalance is the registration bonus credited to the new account
	StartingBalance int64
}

// UpdateProfileInput holds the optional profile fields; empty fields are left untouched
type UpdateProfileInput struct {
	Username  *string
	AvatarURL *string
}

// CreatePostInput holds the fields required to store a feed entry
type CreatePostInput struct {
	AccountID    int64
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
}

// Contact is a followed account projected for the DM contact list
type Contact struct {
	ID        int64  `gorm:"column:id" json:"id"`
	Username  string `gorm:"column:username" json:"username"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatar_url"`
}

// ProfileCounts holds the derived follow-graph counters for a profile
type ProfileCounts struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// FeedPost is a post joined with its author's presentation fields and,
// when a viewer is known, the viewer's liked flag
type FeedPost struct {
	ID           int64       `gorm:"column:id" json:"id"`
	AccountID    int64       `gorm:"column:user_id" json:"user_id"`
	Title        string      `gorm:"column:title" json:"title"`
	Description  string      `gorm:"column:description" json:"description"`
	VideoURL     string      `gorm:"column:video_url" json:"video_url"`
	ThumbnailURL string      `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	LikesCount   int64       `gorm:"column:likes_count" json:"likes_count"`
	CreatedAt    time.Time   `gorm:"column:created_at" json:"created_at"`
	Username     string      `gorm:"column:username" json:"username"`
	AvatarURL    string      `gorm:"column:avatar_url" json:"avatar_url"`
	AuraColor    string      `gorm:"column:aura_color" json:"aura_color"`
	Liked        bool        `gorm:"column:liked" json:"isLiked"`
}

// CommentWithAuthor is a comment joined with its author's presentation fields
type CommentWithAuthor struct {
	ID        int64       `gorm:"column:id" json:"id"`
	PostID    int64       `gorm:"column:post_id" json:"post_id"`
	AccountID int64       `gorm:"column:user_id" json:"user_id"`
	Content   string      `gorm:"column:content" json:"content"`
	CreatedAt time.Time   `gorm:"column:created_at" json:"created_at"`
	Username  string      `gorm:"column:username" json:"username"`
	AvatarURL string      `gorm:"column:avatar_url" json:"avatar_url"`
	AuraColor string      `gorm:"column:aura_color" json:"aura_color"`
	Role      domain.Role `gorm:"column:role" json:"role"`
}

// InventoryItem is an owned catalog item joined with the ownership edge
type InventoryItem struct {
	InventoryID int64     `gorm:"column:inventory_id" json:"inventory_id"`
	ItemID      int64     `gorm:"column:item_id" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	Price       int64     `gorm:"column:price" json:"price"`
	Category    string    `gorm:"column:category" json:"category"`
	EffectValue string    `gorm:"column:effect_value" json:"effect_value"`
	ImageURL    string    `gorm:"column:image_url" json:"image_url"`
	AcquiredAt  time.Time `gorm:"column:acquired_at" json:"acquired_at"`
}

// LikeResult is the outcome of a like toggle
type LikeResult struct {
	// Liked is true when the toggle resulted in a like, false when it removed one
	Liked bool `json:"liked"`
	// Likes is the post's like count after the toggle
	Likes int64 `json:"likes"`
}
