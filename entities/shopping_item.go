package entities

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingItem is a pending purchase that may later become a FoodItem.
// Either ExpirationDate or ExpirationPeriod (a relative shelf life in
// days) is used when deriving the FoodItem's expiration; both may be
// absent, in which case the conversion falls back to a week.
type ShoppingItem struct {
	ID               uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Name             string       `json:"name"`
	Quantity         int          `json:"quantity"`
	Category         FoodCategory `json:"category"`
	ExpirationDate   *time.Time   `json:"expiration_date,omitempty"`
	ExpirationPeriod *int         `json:"expiration_period,omitempty"`
	StorageType      StorageType  `json:"storage_type"`
	ManuallyAdded    bool         `json:"manually_added"`
	LinkedFoodItemID *uuid.UUID   `gorm:"type:uuid" json:"linked_food_item_id,omitempty"`
	Note             string       `json:"note,omitempty"`
	AddedAt          time.Time    `gorm:"type:timestamp" json:"added_at"`
	IsChecked        bool         `json:"is_checked"`

	Position int `gorm:"index" json:"-"`
}

func (s *ShoppingItem) Normalize() {
	if s.Quantity < 1 {
		s.Quantity = 1
	}
	if !s.StorageType.Valid() {
		s.StorageType = StorageFridge
	}
	if !s.Category.Valid() {
		s.Category = CategoryOther
	}
}
