package schema

import (
	"time"
)

// Comment represents the comments table
type Comment struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;index" json:"post_id"`
	AccountID int64     `gorm:"column:user_id;not null" json:"user_id"`
	Content   string    `gorm:"column:content;not null;type:text" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the Comment model
func (Comment) TableName() string {
	return "comments"
}
