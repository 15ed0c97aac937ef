package schema

import (
	"time"
)

// FollowEdge represents the follows table - presence of a row means
// follower follows followee
type FollowEdge struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID int64     `gorm:"column:follower_id;not null;uniqueIndex:idx_follows_pair,priority:1" json:"follower_id"`
	FolloweeID int64     `gorm:"column:following_id;not null;uniqueIndex:idx_follows_pair,priority:2" json:"following_id"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the FollowEdge model
func (FollowEdge) TableName() string {
	return "follows"
}

// BlockEdge represents the blocks table - creating one removes any follow
// edges between the pair in both directions
type BlockEdge struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BlockerID int64     `gorm:"column:blocker_id;not null;uniqueIndex:idx_blocks_pair,priority:1" json:"blocker_id"`
	BlockedID int64     `gorm:"column:blocked_id;not null;uniqueIndex:idx_blocks_pair,priority:2" json:"blocked_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the BlockEdge model
func (BlockEdge) TableName() string {
	return "blocks"
}
