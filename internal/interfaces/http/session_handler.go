package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/eurocore-global/supplyhub-api/internal/application/auth"
	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
)

// SessionHandler serves sign-in, sign-out and the current-session probe, plus
// the contact form stub.
type SessionHandler struct {
	uc *auth.SessionUseCase
}

// NewSessionHandler builds the handler.
func NewSessionHandler(uc *auth.SessionUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Login POST /api/session
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	sess, err := h.uc.Login(in)
	if err != nil && !advisoryStorage(err) {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sess)
}

// Current GET /api/session
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	sess, err := h.uc.Current()
	if err != nil {
		return respondError(c, err)
	}
	if sess == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "nobody is signed in"})
	}
	return c.JSON(sess)
}

// Logout DELETE /api/session
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil && !advisoryStorage(err) {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Contact POST /api/contact. The form is acknowledged and logged; nothing is
// transmitted anywhere.
func (h *SessionHandler) Contact(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email and message are required"})
	}
	log.Info().Str("name", in.Name).Str("email", in.Email).Msg("contact form received")
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "received"})
}
