package schema

import (
	"time"

	"github.com/marcosboni7/backsleeping/internal/domain"
)

// Message represents the messages table - persisted chat history for rooms and DMs.
// Sender presentation fields (aura, avatar, role) are denormalized at send time so
// history replays render without joining users.
type Message struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Room is the broadcast scope: a public room name or a pairwise DM key
	Room      string      `gorm:"column:room;not null;index;type:text" json:"room"`
	Username  string      `gorm:"column:username;not null;type:text" json:"user"`
	Text      string      `gorm:"column:text;not null;type:text" json:"text"`
	AuraColor string      `gorm:"column:aura_color;type:text" json:"aura_color"`
	AvatarURL string      `gorm:"column:avatar_url;type:text" json:"avatar_url"`
	Role      domain.Role `gorm:"column:role;type:text" json:"role"`
	// SenderID references the sending account when known
	SenderID *int64 `gorm:"column:sender_id" json:"sender_id,omitempty"`
	// ReceiverID is set for direct messages and drives the notification push
	ReceiverID *int64 `gorm:"column:receiver_id" json:"receiver_id,omitempty"`
	// CreatedAt is the server-assigned timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_messages_room_time,priority:2" json:"created_at"`
}

// TableName specifies the table name for the Message model
func (Message) TableName() string {
	return "messages"
}
