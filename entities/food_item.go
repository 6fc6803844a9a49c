package entities

import (
	"time"

	"github.com/google/uuid"
)

// StorageType is where an item is kept.
type StorageType string

const (
	StorageFridge  StorageType = "fridge"
	StorageFreezer StorageType = "freezer"
	StoragePantry  StorageType = "pantry"
)

func (s StorageType) Valid() bool {
	switch s {
	case StorageFridge, StorageFreezer, StoragePantry:
		return true
	}
	return false
}

// FoodCategory is a coarse ingredient category.
type FoodCategory string

const (
	CategoryVegetable FoodCategory = "vegetable"
	CategoryMeat      FoodCategory = "meat"
	CategoryDairy     FoodCategory = "dairy"
	CategoryDrink     FoodCategory = "drink"
	CategoryOther     FoodCategory = "other"
)

func (c FoodCategory) Valid() bool {
	switch c {
	case CategoryVegetable, CategoryMeat, CategoryDairy, CategoryDrink, CategoryOther:
		return true
	}
	return false
}

// FoodItem is one inventory entry. Entries with the same name are
// allowed; they represent distinct purchase batches.
type FoodItem struct {
	ID             uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Name           string       `json:"name"`
	Quantity       int          `json:"quantity"`
	ExpirationDate time.Time    `json:"expiration_date"`
	StorageType    StorageType  `json:"storage_type"`
	Category       FoodCategory `json:"category"`

	// Insertion order within the collection. Sorting by expiration is
	// stable on this, so equal-date items never reorder between calls
	// or across restarts.
	Position int `gorm:"index" json:"-"`

	Timestamp
}

// Normalize applies the decode defaults: missing or out-of-range
// optional fields fall back instead of erroring.
func (f *FoodItem) Normalize() {
	if f.Quantity < 1 {
		f.Quantity = 1
	}
	if !f.StorageType.Valid() {
		f.StorageType = StorageFridge
	}
	if !f.Category.Valid() {
		f.Category = CategoryOther
	}
}
