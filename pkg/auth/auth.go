// Package auth provides the single-admin authentication used by the private
// portfolio endpoints: a bcrypt password check at login and JWT bearer tokens
// afterwards.
package auth

import (
	"net/http"
	"time"

	"github.com/Abraxas-365/folio/pkg/errx"
)

// Config holds the authentication settings.
type Config struct {
	JWTSecret         string
	TokenTTL          time.Duration
	Issuer            string
	AdminPasswordHash string // bcrypt hash; empty disables admin login
}

// DefaultConfig returns the baseline auth configuration.
func DefaultConfig() Config {
	return Config{
		TokenTTL: 12 * time.Hour,
		Issuer:   "folio",
	}
}

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid credentials")
	CodeMissingToken       = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "Missing bearer token")
	CodeInvalidToken       = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid or expired token")
	CodeLoginDisabled      = ErrRegistry.Register("LOGIN_DISABLED", errx.TypeBusiness, http.StatusServiceUnavailable, "Admin login is not configured")
)

func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrLoginDisabled() *errx.Error {
	return ErrRegistry.New(CodeLoginDisabled)
}
