// Package httpx carries HTTP plumbing shared by the server and handler tests.
package httpx

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/folio/pkg/errx"
	"github.com/Abraxas-365/folio/pkg/logx"
)

// ErrorHandler converts errors bubbled out of handlers into JSON responses.
// errx errors keep their registered status and body; anything else becomes an
// opaque 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	if e, ok := err.(*errx.Error); ok {
		if e.Type == errx.TypeInternal || e.Type == errx.TypeExternal {
			logx.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		}
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
