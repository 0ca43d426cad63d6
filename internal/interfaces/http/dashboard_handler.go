package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eurocore-global/supplyhub-api/internal/application/usecase"
)

// DashboardHandler serves the role-scoped dashboard.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get GET /api/dashboard (any signed-in role)
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.For(GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
