package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abraxas-365/folio/pkg/httpx"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, "folio")

	token, expiresAt, err := svc.Generate("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "folio", claims.Issuer)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenService("secret-a", time.Hour, "folio").Generate("admin")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour, "folio").Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsWrongIssuer(t *testing.T) {
	token, _, err := NewTokenService("secret", time.Hour, "other-app").Generate("admin")
	require.NoError(t, err)

	_, err = NewTokenService("secret", time.Hour, "folio").Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, "folio")
	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}

func newTestApp(t *testing.T, hash string) (*fiber.App, *TokenService) {
	t.Helper()

	tokens := NewTokenService("test-secret", time.Hour, "folio")
	cfg := DefaultConfig()
	cfg.JWTSecret = "test-secret"
	cfg.AdminPasswordHash = hash

	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler})
	RegisterRoutes(app, NewHandlers(tokens, cfg))
	app.Get("/api/private", Middleware(tokens), func(c *fiber.Ctx) error {
		subject, _ := Subject(c)
		return c.JSON(fiber.Map{"subject": subject})
	})
	return app, tokens
}

func login(t *testing.T, app *fiber.App, password string) *http.Response {
	t.Helper()

	body, err := json.Marshal(LoginRequest{Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	app, _ := newTestApp(t, string(hash))

	resp := login(t, app, "hunter2")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	assert.NotEmpty(t, loginResp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	app, _ := newTestApp(t, string(hash))

	resp := login(t, app, "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_Disabled(t *testing.T) {
	app, _ := newTestApp(t, "")

	resp := login(t, app, "anything")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMiddleware_RequiresToken(t *testing.T) {
	app, _ := newTestApp(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/private", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_AcceptsValidToken(t *testing.T) {
	app, tokens := newTestApp(t, "")

	token, _, err := tokens.Generate("admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/private", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body["subject"])
}

func TestMiddleware_RejectsMalformedHeader(t *testing.T) {
	app, _ := newTestApp(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/private", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
