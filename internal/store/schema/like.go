package schema

import (
	"time"
)

// Like represents the post_likes table - unique per (post, account)
type Like struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:idx_post_likes_post_account,priority:1" json:"post_id"`
	AccountID int64     `gorm:"column:user_id;not null;uniqueIndex:idx_post_likes_post_account,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the Like model
func (Like) TableName() string {
	return "post_likes"
}
