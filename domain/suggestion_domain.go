package domain

import (
	"errors"
)

var (
	MessageSuccessGetSuggestions   = "suggestions retrieved successfully"
	MessageSuccessSaveSuggestion   = "suggestion saved successfully"
	MessageSuccessRemoveSuggestion = "saved suggestion removed successfully"
	MessageSuccessGetSaved         = "saved suggestions retrieved successfully"
	MessageSuccessHideSuggestion   = "suggestion hidden successfully"

	MessageFailedGetSuggestions   = "failed to retrieve suggestions"
	MessageFailedSaveSuggestion   = "failed to save suggestion"
	MessageFailedRemoveSuggestion = "failed to remove saved suggestion"
	MessageFailedGetSaved         = "failed to retrieve saved suggestions"
	MessageFailedHideSuggestion   = "failed to hide suggestion"

	ErrSavedSuggestionNotFound = errors.New("saved suggestion not found")
)

type (
	Suggestion struct {
		Name        string `json:"name"`
		Style       string `json:"style"`
		Time        string `json:"time"`
		Difficulty  string `json:"difficulty"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		Ingredient  string `json:"ingredient"`
	}

	SaveSuggestionRequest struct {
		Name        string `json:"name" validate:"required"`
		Style       string `json:"style" validate:"required"`
		Time        string `json:"time" validate:"required"`
		Difficulty  string `json:"difficulty" validate:"required"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		Ingredient  string `json:"ingredient" validate:"required"`
	}

	HideSuggestionRequest struct {
		Name       string `json:"name" validate:"required"`
		Ingredient string `json:"ingredient" validate:"required"`
	}

	SavedSuggestionResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Style       string `json:"style"`
		Time        string `json:"time"`
		Difficulty  string `json:"difficulty"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		Ingredient  string `json:"ingredient"`
	}
)
