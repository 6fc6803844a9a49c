package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem      = "food item added successfully"
	MessageSuccessUpdateFoodItem   = "food item updated successfully"
	MessageSuccessDeleteFoodItem   = "food item deleted successfully"
	MessageSuccessGetFoodItems     = "food items retrieved successfully"
	MessageSuccessUploadReceipt    = "receipt uploaded successfully"
	MessageSuccessGetReceiptScan   = "receipt scan retrieved successfully"
	MessageSuccessSaveScannedItems = "scanned items saved successfully"
	MessageSuccessGetDashboard     = "dashboard statistics retrieved successfully"
	MessageSuccessSendDigest       = "expiry digest sent successfully"

	MessageFailedAddFoodItem      = "failed to add food item"
	MessageFailedUpdateFoodItem   = "failed to update food item"
	MessageFailedDeleteFoodItem   = "failed to delete food item"
	MessageFailedGetFoodItems     = "failed to retrieve food items"
	MessageFailedUploadReceipt    = "failed to upload receipt"
	MessageFailedGetReceiptScan   = "failed to retrieve receipt scan"
	MessageFailedSaveScannedItems = "failed to save scanned items"
	MessageFailedGetDashboard     = "failed to retrieve dashboard statistics"
	MessageFailedSendDigest       = "failed to send expiry digest"

	ErrFoodItemNotFound    = errors.New("food item not found")
	ErrInvalidExpiration   = errors.New("invalid expiration date")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidStorageType  = errors.New("invalid storage type")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrReceiptScanNotFound = errors.New("receipt scan not found")
)

type (
	AddFoodItemRequest struct {
		Name           string `json:"name" validate:"required"`
		Quantity       int    `json:"quantity" validate:"required,min=1"`
		ExpirationDate string `json:"expiration_date" validate:"required"`
		StorageType    string `json:"storage_type" validate:"omitempty,oneof=fridge freezer pantry"`
		Category       string `json:"category" validate:"omitempty,oneof=vegetable meat dairy drink other"`
	}

	UpdateFoodItemRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
		ExpirationDate string `json:"expiration_date" validate:"omitempty"`
		StorageType    string `json:"storage_type" validate:"omitempty,oneof=fridge freezer pantry"`
		Category       string `json:"category" validate:"omitempty,oneof=vegetable meat dairy drink other"`
	}

	BatchDeleteRequest struct {
		IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
	}

	FoodItemResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Quantity       int       `json:"quantity"`
		ExpirationDate time.Time `json:"expiration_date"`
		StorageType    string    `json:"storage_type"`
		Category       string    `json:"category"`
		ExpiryLabel    string    `json:"expiry_label"`
		ExpiringSoon   bool      `json:"expiring_soon"`
	}

	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	UploadReceiptResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	ReceiptScanResponse struct {
		ScanID   string            `json:"scan_id"`
		ImageURL string            `json:"image_url"`
		Status   string            `json:"status"`
		Items    []ScannedItemInfo `json:"items,omitempty"`
	}

	// ScannedItemInfo is one (name, quantity) pair recognized on a
	// receipt, offered as a candidate food item.
	ScannedItemInfo struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	}

	ScannedItemRequest struct {
		Name           string `json:"name" validate:"required"`
		Quantity       int    `json:"quantity" validate:"required,min=1"`
		ExpirationDate string `json:"expiration_date" validate:"omitempty"`
		StorageType    string `json:"storage_type" validate:"omitempty,oneof=fridge freezer pantry"`
		Category       string `json:"category" validate:"omitempty,oneof=vegetable meat dairy drink other"`
	}

	SaveScannedItemsRequest struct {
		ScanID string               `json:"scan_id" validate:"required,uuid"`
		Items  []ScannedItemRequest `json:"items" validate:"required,dive"`
	}

	DashboardResponse struct {
		TotalItems   int `json:"total_items"`
		Overdue      int `json:"overdue"`
		DueToday     int `json:"due_today"`
		DueTomorrow  int `json:"due_tomorrow"`
		Upcoming     int `json:"upcoming"`
		FarFuture    int `json:"far_future"`
		ExpiringSoon int `json:"expiring_soon"`
	}

	SendExpiryDigestRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)
