package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
	"github.com/eurocore-global/supplyhub-api/internal/application/usecase"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
)

// RFQHandler serves the quote request routes.
type RFQHandler struct {
	uc *usecase.RFQUseCase
}

// NewRFQHandler builds the handler.
func NewRFQHandler(uc *usecase.RFQUseCase) *RFQHandler {
	return &RFQHandler{uc: uc}
}

// Create POST /api/rfqs (customer). A customer session always files under its
// own id, whatever the payload says.
func (h *RFQHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRFQRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	if sess := GetSession(c); sess != nil && sess.Role == entity.RoleCustomer {
		in.CustomerID = sess.ID
	}
	r, err := h.uc.Create(in)
	if err != nil && !advisoryStorage(err) {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// List GET /api/rfqs (admin)
func (h *RFQHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListMine GET /api/rfqs/mine (customer)
func (h *RFQHandler) ListMine(c *fiber.Ctx) error {
	sess := GetSession(c)
	list, err := h.uc.ListByCustomer(sess.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/rfqs/:id
func (h *RFQHandler) GetByID(c *fiber.Ctx) error {
	r, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(r)
}
