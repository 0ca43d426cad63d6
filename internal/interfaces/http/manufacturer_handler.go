package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
	"github.com/eurocore-global/supplyhub-api/internal/application/usecase"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
)

// ManufacturerHandler serves the manufacturer application and catalogue
// routes.
type ManufacturerHandler struct {
	uc *usecase.ManufacturerUseCase
}

// NewManufacturerHandler builds the handler.
func NewManufacturerHandler(uc *usecase.ManufacturerUseCase) *ManufacturerHandler {
	return &ManufacturerHandler{uc: uc}
}

// Register POST /api/manufacturers (public application form)
func (h *ManufacturerHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterManufacturerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	m, err := h.uc.Register(in)
	if err != nil && !advisoryStorage(err) {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// List GET /api/manufacturers (admin)
func (h *ManufacturerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/manufacturers/:id
func (h *ManufacturerHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// Approve POST /api/manufacturers/:id/approve (admin)
func (h *ManufacturerHandler) Approve(c *fiber.Ctx) error {
	m, err := h.uc.Approve(c.Params("id"))
	if err != nil && !advisoryStorage(err) {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// UpdateProfile PUT /api/manufacturers/:id (manufacturer, own record only)
func (h *ManufacturerHandler) UpdateProfile(c *fiber.Ctx) error {
	id := c.Params("id")
	if sess := GetSession(c); sess != nil && sess.Role == entity.RoleManufacturer && sess.ID != id {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "not your record"})
	}
	var in dto.UpdateManufacturerProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	m, err := h.uc.UpdateProfile(id, in)
	if err != nil && !advisoryStorage(err) {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// AddProduct POST /api/manufacturers/:id/products (manufacturer, own record only)
func (h *ManufacturerHandler) AddProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if sess := GetSession(c); sess != nil && sess.Role == entity.RoleManufacturer && sess.ID != id {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "not your record"})
	}
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	m, err := h.uc.AddProduct(id, in)
	if err != nil && !advisoryStorage(err) {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}
