package handlers

import (
	"smart-pantry-backend/domain"
	"smart-pantry-backend/internal/api/presenters"
	"smart-pantry-backend/pkg/scheduler"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		SendTest(c *fiber.Ctx) error
	}

	notificationHandler struct {
		scheduler *scheduler.Scheduler
	}
)

func NewNotificationHandler(sched *scheduler.Scheduler) NotificationHandler {
	return &notificationHandler{scheduler: sched}
}

// SendTest fires one immediate sweep-and-notify pass for the calling user.
func (h *notificationHandler) SendTest(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	count, err := h.scheduler.TriggerFor(c.Context(), username)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTestNotification, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"notified_items": count}, fiber.StatusOK, domain.MessageSuccessTestNotification)
}
