package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddItem      = "pantry item added successfully"
	MessageSuccessDeleteItem   = "pantry item deleted successfully"
	MessageSuccessGetPantry    = "pantry retrieved successfully"
	MessageSuccessClearExpired = "expired items cleared successfully"
	MessageSuccessUploadPhoto  = "item photo uploaded successfully"

	MessageFailedAddItem      = "failed to add pantry item"
	MessageFailedDeleteItem   = "failed to delete pantry item"
	MessageFailedGetPantry    = "failed to retrieve pantry"
	MessageFailedClearExpired = "failed to clear expired items"
	MessageFailedUploadPhoto  = "failed to upload item photo"

	ErrItemNotFound      = errors.New("pantry item not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

type (
	AddPantryItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"required"`
		Quantity int    `json:"quantity" validate:"required,min=1"`
		Unit     string `json:"unit" validate:"required"`
		Expiry   string `json:"expiry" validate:"required"`
	}

	AddPantryItemResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
		Quantity int    `json:"quantity"`
		Unit     string `json:"unit"`
		Expiry   string `json:"expiry"`
		ImageURL string `json:"image_url"`
	}

	UploadItemPhotoRequest struct {
		ItemID string                `json:"item_id" form:"item_id" validate:"required,uuid"`
		Photo  *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	PantryItemView struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
		Quantity int    `json:"quantity"`
		Unit     string `json:"unit"`
		Expiry   string `json:"expiry"`
		ImageURL string `json:"image_url,omitempty"`
		DaysLeft int    `json:"days_left"`
		Bucket   string `json:"bucket"`

		CreatedAt time.Time `json:"created_at"`
	}

	SweepStats struct {
		Total   int `json:"total"`
		Soon    int `json:"soon"`
		Safe    int `json:"safe"`
		Expired int `json:"expired"`
	}

	// SweepResult is the outcome of a destructive sweep: Expired items have
	// already been deleted from the store by the time the caller sees them.
	SweepResult struct {
		Active  []PantryItemView `json:"items"`
		Expired []PantryItemView `json:"expired_items"`
		Stats   SweepStats       `json:"stats"`
	}

	ExpiringItem struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Quantity int    `json:"quantity"`
		Unit     string `json:"unit"`
		DaysLeft int    `json:"days_left"`
	}
)
