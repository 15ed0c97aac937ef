package schema

import (
	"time"
)

// InventoryEntry represents the inventory table - the ownership edge between an
// account and a shop item, created exactly once per successful purchase
type InventoryEntry struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// AccountID references the owning account
	AccountID int64 `gorm:"column:user_id;not null;uniqueIndex:idx_inventory_account_item,priority:1" json:"user_id"`
	// ItemID references the owned shop item
	ItemID int64 `gorm:"column:item_id;not null;uniqueIndex:idx_inventory_account_item,priority:2" json:"item_id"`
	// AcquiredAt is the purchase timestamp
	AcquiredAt time.Time `gorm:"column:acquired_at;not null;default:now();type:timestamptz" json:"acquired_at"`

	// Associations
	Account Account  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	Item    ShopItem `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the InventoryEntry model
func (InventoryEntry) TableName() string {
	return "inventory"
}
