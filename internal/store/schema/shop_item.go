package schema

import (
	"time"
)

// ItemCategory represents the kind of effect a shop item carries
type ItemCategory string

const (
	// ItemCategoryAura is a cosmetic; purchasing one equips its color immediately
	ItemCategoryAura ItemCategory = "aura"
	// ItemCategoryBoost is an XP multiplier
	ItemCategoryBoost ItemCategory = "boost"
	// ItemCategoryGeneric is a plain collectible with no side effect
	ItemCategoryGeneric ItemCategory = "generic"
)

// ShopItem represents the products table - immutable catalog reference data read by the purchase flow
type ShopItem struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Name is the display name of the item
	Name string `gorm:"column:name;not null;type:text" json:"name"`
	// Description is the catalog blurb
	Description string `gorm:"column:description;type:text" json:"description"`
	// Price is the cost in in-app currency, never negative
	Price int64 `gorm:"column:price;not null" json:"price"`
	// Category determines the purchase side effect (aura, boost, generic)
	Category ItemCategory `gorm:"column:category;not null;default:generic;type:text" json:"category"`
	// EffectValue is the category-specific payload: a #rrggbb color for auras,
	// a multiplier for boosts, empty for generic items
	EffectValue string `gorm:"column:effect_value;type:text" json:"effect_value"`
	// ImageURL points at the catalog artwork
	ImageURL string `gorm:"column:image_url;type:text" json:"image_url"`
	// CreatedAt is the timestamp the item entered the catalog
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the ShopItem model
func (ShopItem) TableName() string {
	return "products"
}
