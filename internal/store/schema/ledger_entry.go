package schema

import (
	"time"
)

// LedgerEntry represents the ledger_entries table - an append-only record of
// every currency movement. Rows are never mutated or deleted.
type LedgerEntry struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// AccountID references the account whose balance moved
	AccountID int64 `gorm:"column:user_id;not null;index" json:"user_id"`
	// Delta is the signed currency change (negative for purchase debits)
	Delta int64 `gorm:"column:delta;not null" json:"delta"`
	// Label describes the movement, e.g. "purchase:Aura Dourada"
	Label string `gorm:"column:label;not null;type:text" json:"label"`
	// Reference is a ULID correlating the entry with the operation that wrote it
	Reference string `gorm:"column:reference;not null;uniqueIndex;type:text" json:"reference"`
	// CreatedAt is the timestamp of the movement
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`

	// Associations
	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
