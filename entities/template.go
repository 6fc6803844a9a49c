package entities

import (
	"time"

	"github.com/google/uuid"
)

// Template is a named, reusable bundle of prototype shopping items,
// typically a recipe's ingredient list. Item order is display order.
type Template struct {
	ID    uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name  string         `json:"name"`
	Items []TemplateItem `gorm:"serializer:json;type:jsonb" json:"items"`

	Position int `gorm:"index" json:"-"`

	Timestamp
}

// TemplateItem is a prototype ingredient. Recipe staples usually carry
// a relative ExpirationPeriod rather than a fixed date.
type TemplateItem struct {
	ID               uuid.UUID    `json:"id"`
	Name             string       `json:"name"`
	Quantity         int          `json:"quantity"`
	ExpirationDate   *time.Time   `json:"expiration_date,omitempty"`
	ExpirationPeriod *int         `json:"expiration_period,omitempty"`
	StorageType      StorageType  `json:"storage_type"`
	Category         FoodCategory `json:"category"`
}

func (t *TemplateItem) Normalize() {
	if t.Quantity < 1 {
		t.Quantity = 1
	}
	if !t.StorageType.Valid() {
		t.StorageType = StorageFridge
	}
	if !t.Category.Valid() {
		t.Category = CategoryOther
	}
}

func (t *Template) Normalize() {
	for i := range t.Items {
		t.Items[i].Normalize()
	}
}
