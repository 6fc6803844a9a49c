package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddShoppingItem    = "shopping item added successfully"
	MessageSuccessUpdateShoppingItem = "shopping item updated successfully"
	MessageSuccessDeleteShoppingItem = "shopping item deleted successfully"
	MessageSuccessGetShoppingItems   = "shopping items retrieved successfully"
	MessageSuccessToggleShoppingItem = "shopping item toggled successfully"
	MessageSuccessCheckout           = "checked items moved to inventory"
	MessageSuccessSaveAsTemplate     = "shopping list saved as template"

	MessageFailedAddShoppingItem    = "failed to add shopping item"
	MessageFailedUpdateShoppingItem = "failed to update shopping item"
	MessageFailedDeleteShoppingItem = "failed to delete shopping item"
	MessageFailedGetShoppingItems   = "failed to retrieve shopping items"
	MessageFailedToggleShoppingItem = "failed to toggle shopping item"
	MessageFailedCheckout           = "failed to move checked items to inventory"
	MessageFailedSaveAsTemplate     = "failed to save shopping list as template"

	ErrShoppingItemNotFound = errors.New("shopping item not found")
	ErrEmptyShoppingList    = errors.New("shopping list is empty")
)

type (
	AddShoppingItemRequest struct {
		Name             string `json:"name" validate:"required"`
		Quantity         int    `json:"quantity" validate:"omitempty,min=1"`
		Category         string `json:"category" validate:"omitempty,oneof=vegetable meat dairy drink other"`
		ExpirationDate   string `json:"expiration_date" validate:"omitempty"`
		ExpirationPeriod *int   `json:"expiration_period" validate:"omitempty,min=1"`
		StorageType      string `json:"storage_type" validate:"omitempty,oneof=fridge freezer pantry"`
		LinkedFoodItemID string `json:"linked_food_item_id" validate:"omitempty,uuid"`
		Note             string `json:"note" validate:"omitempty"`
	}

	UpdateShoppingItemRequest struct {
		Name             string `json:"name" validate:"omitempty"`
		Quantity         int    `json:"quantity" validate:"omitempty,min=1"`
		Category         string `json:"category" validate:"omitempty,oneof=vegetable meat dairy drink other"`
		ExpirationDate   string `json:"expiration_date" validate:"omitempty"`
		ExpirationPeriod *int   `json:"expiration_period" validate:"omitempty,min=1"`
		StorageType      string `json:"storage_type" validate:"omitempty,oneof=fridge freezer pantry"`
		Note             string `json:"note" validate:"omitempty"`
	}

	ShoppingItemResponse struct {
		ID               string     `json:"id"`
		Name             string     `json:"name"`
		Quantity         int        `json:"quantity"`
		Category         string     `json:"category"`
		ExpirationDate   *time.Time `json:"expiration_date,omitempty"`
		ExpirationPeriod *int       `json:"expiration_period,omitempty"`
		StorageType      string     `json:"storage_type"`
		ManuallyAdded    bool       `json:"manually_added"`
		LinkedFoodItemID string     `json:"linked_food_item_id,omitempty"`
		Note             string     `json:"note,omitempty"`
		AddedAt          time.Time  `json:"added_at"`
		IsChecked        bool       `json:"is_checked"`
	}

	CheckoutResponse struct {
		ConvertedItems []FoodItemResponse `json:"converted_items"`
	}

	SaveAsTemplateRequest struct {
		Name string `json:"name" validate:"required"`
	}
)
