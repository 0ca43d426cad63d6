package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eurocore-global/supplyhub-api/internal/application/dto"
)

// PageContent is a static marketing page served as JSON for whatever front
// end renders it.
type PageContent struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Body  []string `json:"body"`
}

var pages = []PageContent{
	{
		Slug:  "home",
		Title: "Defence Supply Hub (DSH)",
		Body: []string{
			"A secure, EU-compliant B2B marketplace connecting European and Ukrainian defence technology manufacturers and customers.",
			"Mission: Build a trusted and transparent European defence marketplace enhancing supply security and strategic autonomy.",
			"Key Advantages: EU/NATO compliant, audited marketplace, data-driven membership model, supporting SMEs and large enterprises.",
		},
	},
	{
		Slug:  "partners",
		Title: "Partners / Collaborations",
		Body:  []string{"Demo logos and collaboration highlights."},
	},
	{
		Slug:  "news",
		Title: "News & Insights",
		Body:  []string{"Sample news updates about defence industry and marketplace."},
	},
	{
		Slug:  "support",
		Title: "Support",
		Body:  []string{"FAQs, helpdesk, and ticket form simulation."},
	},
	{
		Slug:  "contact",
		Title: "Contact Us",
		Body:  []string{"Eurocore Global Oy Headquarters, Finland"},
	},
}

// ContentHandler serves the marketing pages.
type ContentHandler struct{}

// NewContentHandler builds the handler.
func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// List GET /api/pages
func (h *ContentHandler) List(c *fiber.Ctx) error {
	return c.JSON(pages)
}

// GetBySlug GET /api/pages/:slug
func (h *ContentHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	for i := range pages {
		if pages[i].Slug == slug {
			return c.JSON(pages[i])
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no such page"})
}
