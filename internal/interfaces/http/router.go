package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eurocore-global/supplyhub-api/internal/application/auth"
	"github.com/eurocore-global/supplyhub-api/internal/application/usecase"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/domain/repository"
)

// RouterDeps are the router's dependencies.
type RouterDeps struct {
	ManufacturerUC *usecase.ManufacturerUseCase
	CustomerUC     *usecase.CustomerUseCase
	RFQUC          *usecase.RFQUseCase
	DashboardUC    *usecase.DashboardUseCase
	SessionUC      *auth.SessionUseCase
	Sessions       repository.SessionRepository
}

// Router registers the API routes. Registration forms and marketing pages
// are public; listings, approvals and dashboards are gated on the session
// role.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(deps.Sessions, entity.RoleAdmin)
	anyRole := RequireRole(deps.Sessions, entity.RoleAdmin, entity.RoleManufacturer, entity.RoleCustomer)

	// Session (public)
	sessionHandler := NewSessionHandler(deps.SessionUC)
	api.Post("/session", sessionHandler.Login)
	api.Get("/session", sessionHandler.Current)
	api.Delete("/session", sessionHandler.Logout)
	api.Post("/contact", sessionHandler.Contact)

	// Marketing pages (public)
	contentHandler := NewContentHandler()
	api.Get("/pages", contentHandler.List)
	api.Get("/pages/:slug", contentHandler.GetBySlug)

	// Manufacturers
	manufacturers := api.Group("/manufacturers")
	manufacturerHandler := NewManufacturerHandler(deps.ManufacturerUC)
	manufacturers.Post("/", manufacturerHandler.Register)
	manufacturers.Get("/", adminOnly, manufacturerHandler.List)
	manufacturers.Get("/:id", manufacturerHandler.GetByID)
	manufacturers.Post("/:id/approve", adminOnly, manufacturerHandler.Approve)
	manufacturers.Put("/:id",
		RequireRole(deps.Sessions, entity.RoleAdmin, entity.RoleManufacturer),
		manufacturerHandler.UpdateProfile)
	manufacturers.Post("/:id/products",
		RequireRole(deps.Sessions, entity.RoleAdmin, entity.RoleManufacturer),
		manufacturerHandler.AddProduct)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Register)
	customers.Get("/", adminOnly, customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/:id/approve", adminOnly, customerHandler.Approve)

	// RFQs
	rfqs := api.Group("/rfqs")
	rfqHandler := NewRFQHandler(deps.RFQUC)
	rfqs.Post("/", RequireRole(deps.Sessions, entity.RoleAdmin, entity.RoleCustomer), rfqHandler.Create)
	rfqs.Get("/", adminOnly, rfqHandler.List)
	rfqs.Get("/mine", RequireRole(deps.Sessions, entity.RoleCustomer), rfqHandler.ListMine)
	rfqs.Get("/:id", anyRole, rfqHandler.GetByID)

	// Dashboard (role-scoped)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", anyRole, dashboardHandler.Get)
}
