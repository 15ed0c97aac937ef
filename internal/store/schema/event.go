package schema

import (
	"time"
)

// Event represents the events table - hashtag challenges surfaced on the feed.
// Rows are lazily created the first time a tag page is requested.
type Event struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Tag         string     `gorm:"column:tag;not null;uniqueIndex;type:text" json:"tag"`
	Title       string     `gorm:"column:title;not null;type:text" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	BannerURL   string     `gorm:"column:banner_url;type:text" json:"banner_url"`
	Active      bool       `gorm:"column:active;not null;default:true" json:"active"`
	EndDate     *time.Time `gorm:"column:end_date;type:timestamptz" json:"end_date,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}
