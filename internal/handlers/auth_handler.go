package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/guestwall/guestwall-backend/internal/dto"
	"github.com/guestwall/guestwall-backend/internal/identity"
	"github.com/guestwall/guestwall-backend/internal/services"
)

type AuthHandler struct {
	gate *services.SessionService
}

func NewAuthHandler(gate *services.SessionService) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// Login establishes a session. Identity-layer success with a Standard role
// is not enough for a cookie: admin authorization is a separate check, and
// the just-issued provider token is revoked instead.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	session, err := h.gate.Establish(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	if session.Role != identity.RoleAdmin {
		h.gate.Invalidate(c.UserContext(), session.Token)
		h.gate.ClearCookie(c)
		return c.Status(fiber.StatusForbidden).JSON(dto.AuthErrorResponse{
			Authenticated: false, Error: "forbidden",
		})
	}

	h.gate.IssueCookie(c, session.Token)
	return c.JSON(dto.VerifyResponse{
		Authenticated: true,
		User: &dto.AdminUserResponse{
			ID:       session.Identity.ID,
			Email:    session.Identity.Email,
			Username: services.UsernameOf(session.Identity.Email),
			Role:     string(session.Role),
		},
	})
}

// Verify reports the session state for the UI auth guard.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	admin, status := h.gate.Verify(c.UserContext(), c.Cookies(services.SessionCookie))
	switch status {
	case services.StatusAdmin:
		return c.JSON(dto.VerifyResponse{
			Authenticated: true,
			User: &dto.AdminUserResponse{
				ID:       admin.ID,
				Email:    admin.Email,
				Username: admin.Username,
				Role:     string(admin.Role),
			},
		})
	case services.StatusForbidden:
		h.gate.ClearCookie(c)
		return c.Status(fiber.StatusForbidden).JSON(dto.AuthErrorResponse{
			Authenticated: false, Error: "forbidden",
		})
	default:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{
			Authenticated: false, Error: "unauthenticated",
		})
	}
}

// Logout clears the session. Succeeds regardless of prior session presence.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.gate.Invalidate(c.UserContext(), c.Cookies(services.SessionCookie))
	h.gate.ClearCookie(c)
	return c.JSON(dto.LogoutResponse{Success: true})
}
