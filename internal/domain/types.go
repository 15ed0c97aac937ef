package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Role represents an account's permission tier
type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// IsValidRole checks if a role is one of the known tiers
func IsValidRole(role Role) bool {
	return role == RoleUser || role == RoleStaff || role == RoleAdmin
}

// hexColorRegex matches a #rrggbb hex color, the only aura format clients send
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsValidHexColor checks if a string is a #rrggbb hex color
func IsValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// DefaultAuraColor is the aura every account starts with
const DefaultAuraColor = "#ffffff"

// DMRoomKey derives the deterministic room name for a direct-message
// conversation between two accounts. The lower ID always comes first so
// both participants resolve the same room.
func DMRoomKey(a, b int64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("dm_%d_%d", a, b)
}

// PersonalRoom is the per-account group used for targeted pushes
// (notifications, DM previews) regardless of which rooms the account joined.
func PersonalRoom(accountID int64) string {
	return fmt.Sprintf("user_%d", accountID)
}

// ChatEvent is a delivered chat message mirrored to the message broker
type ChatEvent struct {
	Room      string    `json:"room"`
	Username  string    `json:"user"`
	Text      string    `json:"text"`
	SenderID  *int64    `json:"sender_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
