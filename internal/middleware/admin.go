package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/guestwall/guestwall-backend/internal/config"
	"github.com/guestwall/guestwall-backend/internal/dto"
	"github.com/guestwall/guestwall-backend/internal/services"
)

// AdminRequired guards the admin surface. Every request re-verifies the
// session through SessionService.Verify — the same primitive the verify
// endpoint uses, so there is exactly one role-check path. API clients get
// 401/403 JSON; browser navigations get redirected to the login page.
func AdminRequired(gate *services.SessionService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, status := gate.Verify(c.UserContext(), c.Cookies(services.SessionCookie))
		if status == services.StatusAdmin {
			c.Locals("admin", admin)
			return c.Next()
		}

		// A session bound to an identity that no longer qualifies as admin
		// must not linger: destroy the cookie, not just deny the request.
		if status == services.StatusForbidden {
			gate.ClearCookie(c)
		}

		if wantsHTML(c) {
			return c.Redirect(cfg.LoginPath, fiber.StatusFound)
		}

		if status == services.StatusForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.AuthErrorResponse{
				Authenticated: false, Error: "forbidden",
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{
			Authenticated: false, Error: "unauthenticated",
		})
	}
}

// AdminFromContext returns the verified admin set by AdminRequired.
func AdminFromContext(c *fiber.Ctx) *services.AdminUser {
	admin, _ := c.Locals("admin").(*services.AdminUser)
	return admin
}

func wantsHTML(c *fiber.Ctx) bool {
	accept := c.Get(fiber.HeaderAccept)
	return strings.Contains(accept, "text/html") && !strings.Contains(accept, "application/json")
}
