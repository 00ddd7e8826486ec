package contactapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/folio/pkg/kernel"
	"github.com/Abraxas-365/folio/portfolio/contact"
	"github.com/Abraxas-365/folio/portfolio/contact/contactsrv"
)

// Handlers provides HTTP handlers for contact operations
type Handlers struct {
	service *contactsrv.ContactService
}

// NewHandlers creates a new contact handlers instance
func NewHandlers(service *contactsrv.ContactService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// SubmitMessage accepts a contact-form submission
// POST /api/contact
func (h *Handlers) SubmitMessage(c *fiber.Ctx) error {
	var req contact.SubmitMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return contact.ErrInvalidMessage().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.SubmitMessage(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListMessages retrieves all stored messages
// GET /api/contact/messages
func (h *Handlers) ListMessages(c *fiber.Ctx) error {
	responses, err := h.service.ListMessages(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(responses)
}

// MarkMessageRead flags a message as read
// POST /api/contact/messages/:id/read
func (h *Handlers) MarkMessageRead(c *fiber.Ctx) error {
	id := kernel.MessageID(c.Params("id"))

	if err := h.service.MarkMessageRead(c.Context(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Message marked as read",
	})
}

// RegisterRoutes registers all contact routes. The admin listing routes sit
// behind the auth middleware.
func RegisterRoutes(app *fiber.App, handlers *Handlers, adminAuth fiber.Handler) {
	app.Post("/api/contact", handlers.SubmitMessage)
	app.Get("/api/contact/messages", adminAuth, handlers.ListMessages)
	app.Post("/api/contact/messages/:id/read", adminAuth, handlers.MarkMessageRead)
}
