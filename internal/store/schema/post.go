package schema

import (
	"time"
)

// Post represents the posts table - a short-video feed entry
type Post struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// AccountID references the author
	AccountID int64 `gorm:"column:user_id;not null;index" json:"user_id"`
	Title     string `gorm:"column:title;type:text" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	// VideoURL is the playback URL returned by media storage
	VideoURL string `gorm:"column:video_url;not null;type:text" json:"video_url"`
	// ThumbnailURL is the preview image URL; falls back to the provider-generated
	// thumbnail when no explicit one was uploaded
	ThumbnailURL string `gorm:"column:thumbnail_url;type:text" json:"thumbnail_url"`
	// LikesCount is the denormalized like counter kept in step with post_likes
	LikesCount int64 `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`

	// Associations
	Likes    []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the Post model
func (Post) TableName() string {
	return "posts"
}
