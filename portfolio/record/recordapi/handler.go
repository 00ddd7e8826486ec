package recordapi

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/folio/pkg/kernel"
	"github.com/Abraxas-365/folio/portfolio/record"
	"github.com/Abraxas-365/folio/portfolio/record/recordsrv"
)

// Handlers provides HTTP handlers for record operations
type Handlers struct {
	service *recordsrv.RecordService
}

// NewHandlers creates a new record handlers instance
func NewHandlers(service *recordsrv.RecordService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetExperience serves experience records.
// GET /api/experience[?id=...]
func (h *Handlers) GetExperience(c *fiber.Ctx) error {
	return h.getRecords(c, record.KindExperience)
}

// GetEducation serves education records.
// GET /api/education[?id=...]
func (h *Handlers) GetEducation(c *fiber.Ctx) error {
	return h.getRecords(c, record.KindEducation)
}

func (h *Handlers) getRecords(c *fiber.Ctx, kind record.Kind) error {
	if bad := unknownQueryParams(c, "id"); len(bad) > 0 {
		return record.ErrUnknownQueryParam().WithDetail("params", bad)
	}

	if id := c.Query("id"); id != "" {
		resp, err := h.service.GetRecord(c.Context(), kind, kernel.RecordID(id))
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	responses, err := h.service.ListRecords(c.Context(), kind)
	if err != nil {
		return err
	}
	return c.JSON(responses)
}

// unknownQueryParams returns the sorted names of query parameters outside the
// allowed set.
func unknownQueryParams(c *fiber.Ctx, allowed ...string) []string {
	var bad []string
	for key := range c.Queries() {
		recognized := false
		for _, a := range allowed {
			if key == a {
				recognized = true
				break
			}
		}
		if !recognized {
			bad = append(bad, key)
		}
	}
	sort.Strings(bad)
	return bad
}

// RegisterRoutes registers all record routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Get("/api/experience", handlers.GetExperience)
	app.Get("/api/education", handlers.GetEducation)
}
