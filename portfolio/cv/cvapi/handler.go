package cvapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/folio/portfolio/cv"
)

// Handlers provides HTTP handlers for CV downloads
type Handlers struct {
	service *cv.Service
}

// NewHandlers creates a new CV handlers instance
func NewHandlers(service *cv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetCV returns a presigned download URL for the CV
// GET /api/cv
func (h *Handlers) GetCV(c *fiber.Ctx) error {
	resp, err := h.service.DownloadURL(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RegisterRoutes registers all CV routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Get("/api/cv", handlers.GetCV)
}
