package projectapi

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/folio/pkg/kernel"
	"github.com/Abraxas-365/folio/portfolio/project"
	"github.com/Abraxas-365/folio/portfolio/project/projectsrv"
)

// Handlers provides HTTP handlers for project operations
type Handlers struct {
	service *projectsrv.ProjectService
}

// NewHandlers creates a new project handlers instance
func NewHandlers(service *projectsrv.ProjectService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetProjects serves the projects route. Only name and id are recognized
// query parameters; name takes priority over id, and with neither every
// project is returned.
// GET /api/projects[?name=...|?id=...]
func (h *Handlers) GetProjects(c *fiber.Ctx) error {
	if bad := unknownQueryParams(c, "name", "id"); len(bad) > 0 {
		return project.ErrUnknownQueryParam().WithDetail("params", bad)
	}

	if name := c.Query("name"); name != "" {
		resp, err := h.service.GetProjectByName(c.Context(), name)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	if id := c.Query("id"); id != "" {
		resp, err := h.service.GetProjectByID(c.Context(), kernel.ProjectID(id))
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	responses, err := h.service.GetAllProjects(c.Context())
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

// RegisterRoutes registers all project routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Get("/api/projects", handlers.GetProjects)
}
