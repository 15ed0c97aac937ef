package schema

import (
	"time"

	"github.com/marcosboni7/backsleeping/internal/domain"
)

// Account represents the users table - identity, currency balance and equipped cosmetics
type Account struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Username is the public handle, unique across accounts
	Username string `gorm:"column:username;not null;uniqueIndex;type:text" json:"username"`
	// Email is the login identity, stored lower-cased, unique across accounts
	Email string `gorm:"column:email;not null;uniqueIndex;type:text" json:"email"`
	// PasswordHash is the bcrypt digest of the account password
	PasswordHash string `gorm:"column:password;not null;type:text" json:"-"`
	// Balance is the in-app currency amount; mutated only by the purchase
	// transaction and explicit grants, never negative
	Balance int64 `gorm:"column:balance;not null;default:0" json:"balance"`
	// XP is the experience counter, monotonically non-decreasing
	XP int64 `gorm:"column:xp;not null;default:0" json:"xp"`
	// Role is the permission tier (user, staff, admin)
	Role domain.Role `gorm:"column:role;not null;default:user;type:text" json:"role"`
	// AuraColor is the equipped cosmetic, set as a side effect of purchasing
	// or equipping an aura item
	AuraColor string `gorm:"column:aura_color;not null;default:#ffffff;type:text" json:"aura_color"`
	// AvatarURL points at the account's profile image in media storage
	AvatarURL string `gorm:"column:avatar_url;type:text" json:"avatar_url"`
	// CreatedAt is the registration timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`

	// Associations
	Inventory     []InventoryEntry `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	LedgerEntries []LedgerEntry    `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	Posts         []Post           `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "users"
}
