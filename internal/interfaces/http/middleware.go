package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/domain/repository"
)

const sessionKey = "session"

// RequireRole gates a route on the persisted session. No session at all is
// 401; a session with the wrong role is 403. This is the role-selection stub
// from the session layer, not real authentication.
func RequireRole(sessions repository.SessionRepository, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessions.Get()
		if err != nil {
			return respondError(c, err)
		}
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sign in required"})
		}
		for _, role := range roles {
			if sess.Role == role {
				c.Locals(sessionKey, sess)
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "role not allowed"})
	}
}

// GetSession returns the session loaded by RequireRole, or nil on an
// unguarded route.
func GetSession(c *fiber.Ctx) *entity.Session {
	sess, _ := c.Locals(sessionKey).(*entity.Session)
	return sess
}
