package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/guestwall/guestwall-backend/internal/dto"
	"github.com/guestwall/guestwall-backend/internal/models"
	"github.com/guestwall/guestwall-backend/internal/services"
)

type ModerationHandler struct {
	moderationService *services.ModerationService
}

func NewModerationHandler(moderationService *services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

func (h *ModerationHandler) ListMessages(c *fiber.Ctx) error {
	messages, err := h.moderationService.ListMessages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch messages",
		})
	}

	return c.JSON(fiber.Map{
		"messages": messages,
		"total":    len(messages),
	})
}

func (h *ModerationHandler) Decide(c *fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid message ID",
		})
	}

	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.moderationService.SetDecision(messageID, models.ModerationState(req.Decision)); err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrInvalidDecision) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update message",
		})
	}

	return c.JSON(fiber.Map{"message": "Moderation decision applied"})
}

func (h *ModerationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.moderationService.ComputeStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute stats",
		})
	}

	return c.JSON(dto.StatsResponse{
		Total:     stats.Total,
		Approved:  stats.Approved,
		Pending:   stats.Pending,
		Rejected:  stats.Rejected,
		WithMedia: stats.WithMedia,
		Countries: stats.Countries,
	})
}
