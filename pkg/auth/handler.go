package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries a freshly issued token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Handlers provides the HTTP surface for admin authentication.
type Handlers struct {
	tokens *TokenService
	config Config
}

// NewHandlers creates the auth handlers.
func NewHandlers(tokens *TokenService, config Config) *Handlers {
	return &Handlers{
		tokens: tokens,
		config: config,
	}
}

// Login exchanges the admin password for a bearer token.
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	if h.config.AdminPasswordHash == "" {
		return ErrLoginDisabled()
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidCredentials().WithDetail("parse_error", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.config.AdminPasswordHash), []byte(req.Password)); err != nil {
		return ErrInvalidCredentials()
	}

	token, expiresAt, err := h.tokens.Generate("admin")
	if err != nil {
		return err
	}

	return c.JSON(LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// RegisterRoutes registers the auth routes.
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Post("/api/auth/login", handlers.Login)
}
