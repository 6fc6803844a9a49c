package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddTemplate    = "template added successfully"
	MessageSuccessGetTemplates   = "templates retrieved successfully"
	MessageSuccessDeleteTemplate = "template deleted successfully"
	MessageSuccessRenameTemplate = "template renamed successfully"
	MessageSuccessReplaceItems   = "template items replaced successfully"
	MessageSuccessApplyTemplate  = "template applied to shopping list"

	MessageFailedAddTemplate    = "failed to add template"
	MessageFailedGetTemplates   = "failed to retrieve templates"
	MessageFailedDeleteTemplate = "failed to delete template"
	MessageFailedRenameTemplate = "failed to rename template"
	MessageFailedReplaceItems   = "failed to replace template items"
	MessageFailedApplyTemplate  = "failed to apply template"

	ErrTemplateNotFound = errors.New("template not found")
)

type (
	TemplateItemRequest struct {
		Name             string `json:"name" validate:"required"`
		Quantity         int    `json:"quantity" validate:"omitempty,min=1"`
		ExpirationDate   string `json:"expiration_date" validate:"omitempty"`
		ExpirationPeriod *int   `json:"expiration_period" validate:"omitempty,min=1"`
		StorageType      string `json:"storage_type" validate:"omitempty,oneof=fridge freezer pantry"`
		Category         string `json:"category" validate:"omitempty,oneof=vegetable meat dairy drink other"`
	}

	AddTemplateRequest struct {
		Name  string                `json:"name" validate:"required"`
		Items []TemplateItemRequest `json:"items" validate:"required,dive"`
	}

	RenameTemplateRequest struct {
		Name string `json:"name" validate:"required"`
	}

	ReplaceTemplateItemsRequest struct {
		Items []TemplateItemRequest `json:"items" validate:"required,dive"`
	}

	TemplateItemResponse struct {
		ID               string     `json:"id"`
		Name             string     `json:"name"`
		Quantity         int        `json:"quantity"`
		ExpirationDate   *time.Time `json:"expiration_date,omitempty"`
		ExpirationPeriod *int       `json:"expiration_period,omitempty"`
		StorageType      string     `json:"storage_type"`
		Category         string     `json:"category"`
	}

	TemplateResponse struct {
		ID    string                 `json:"id"`
		Name  string                 `json:"name"`
		Items []TemplateItemResponse `json:"items"`
	}
)
