package handlers

import (
	"time"

	"smart-pantry-backend/domain"
	"smart-pantry-backend/internal/api/presenters"
	"smart-pantry-backend/pkg/pantry"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PantryHandler interface {
		AddItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		GetPantry(c *fiber.Ctx) error
		ClearExpired(c *fiber.Ctx) error
		UploadItemPhoto(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService pantry.PantryService
		validator     *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService: pantryService,
		validator:     validator,
	}
}

func (h *pantryHandler) AddItem(c *fiber.Ctx) error {
	username := c.Locals("username").(string)
	req := new(domain.AddPantryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	res, err := h.pantryService.AddItem(c.Context(), *req, username)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddItem)
}

func (h *pantryHandler) DeleteItem(c *fiber.Ctx) error {
	username := c.Locals("username").(string)
	itemID := c.Params("id")

	if err := h.pantryService.DeleteItem(c.Context(), itemID, username); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}

// GetPantry returns the swept pantry view. The sweep purges expired items as
// a side effect, so even this read mutates the store.
func (h *pantryHandler) GetPantry(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	res, err := h.pantryService.SweepAndPurge(c.Context(), username, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPantry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPantry)
}

func (h *pantryHandler) ClearExpired(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	removed, err := h.pantryService.ClearExpired(c.Context(), username, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearExpired, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"removed": removed}, fiber.StatusOK, domain.MessageSuccessClearExpired)
}

func (h *pantryHandler) UploadItemPhoto(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	photo, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.UploadItemPhotoRequest{
		ItemID: c.FormValue("item_id"),
		Photo:  photo,
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	if err := h.pantryService.UploadItemPhoto(c.Context(), req, username); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUploadPhoto)
}
