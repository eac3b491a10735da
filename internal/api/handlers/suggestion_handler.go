package handlers

import (
	"smart-pantry-backend/domain"
	"smart-pantry-backend/internal/api/presenters"
	"smart-pantry-backend/pkg/suggestion"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SuggestionHandler interface {
		GetForItem(c *fiber.Ctx) error
		GetForPantry(c *fiber.Ctx) error
		Save(c *fiber.Ctx) error
		Remove(c *fiber.Ctx) error
		ListSaved(c *fiber.Ctx) error
		Hide(c *fiber.Ctx) error
	}

	suggestionHandler struct {
		suggestionService suggestion.SuggestionService
		validator         *validator.Validate
	}
)

func NewSuggestionHandler(suggestionService suggestion.SuggestionService, validator *validator.Validate) SuggestionHandler {
	return &suggestionHandler{
		suggestionService: suggestionService,
		validator:         validator,
	}
}

func (h *suggestionHandler) GetForItem(c *fiber.Ctx) error {
	username := c.Locals("username").(string)
	item := c.Query("item")

	if item == "" {
		return presenters.SuccessResponse(c, []domain.Suggestion{}, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
	}

	res, err := h.suggestionService.GetSuggestionsForItem(c.Context(), item, username)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}

func (h *suggestionHandler) GetForPantry(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	res, err := h.suggestionService.GetPantrySuggestions(c.Context(), username)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}

func (h *suggestionHandler) Save(c *fiber.Ctx) error {
	username := c.Locals("username").(string)
	req := new(domain.SaveSuggestionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveSuggestion, err)
	}

	if err := h.suggestionService.SaveSuggestion(c.Context(), *req, username); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveSuggestion, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSaveSuggestion)
}

func (h *suggestionHandler) Remove(c *fiber.Ctx) error {
	username := c.Locals("username").(string)
	suggestionID := c.Params("id")

	if err := h.suggestionService.RemoveSavedSuggestion(c.Context(), suggestionID, username); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveSuggestion, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveSuggestion)
}

func (h *suggestionHandler) ListSaved(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	res, err := h.suggestionService.GetSavedSuggestions(c.Context(), username)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSaved, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSaved)
}

func (h *suggestionHandler) Hide(c *fiber.Ctx) error {
	username := c.Locals("username").(string)
	req := new(domain.HideSuggestionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedHideSuggestion, err)
	}

	if err := h.suggestionService.HideSuggestion(c.Context(), *req, username); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedHideSuggestion, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessHideSuggestion)
}
