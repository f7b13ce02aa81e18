package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/gestor-sucursal/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/gestor-sucursal/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testTenantID  = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "gestor-sucursal-test"
	testExpMin    = 60
)

type revokedSet map[string]bool

func (r revokedSet) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	return r[sessionID], nil
}

// buildTestApp app Fiber mínima: AuthMiddleware + FirstLoginGate + RequireRole y un handler dummy.
func buildTestApp(revoked revokedSet, allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(nil)})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, revoked),
		apphttp.FirstLoginGate(),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":        true,
				"user_id":   apphttp.GetUserID(c),
				"tenant_id": apphttp.GetTenantID(c),
				"role":      apphttp.GetRole(c),
				"selected":  apphttp.SelectedTenant(c),
			})
		},
	)
	return app
}

func token(t *testing.T, sub pkgjwt.Subject) string {
	t.Helper()
	if sub.UserID == "" {
		sub.UserID = testUserID
	}
	tok, err := pkgjwt.Generate(testJWTSecret, sub, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected?tenant_id=elegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_GerenteAccede(t *testing.T) {
	app := buildTestApp(nil, "ADMIN", "MANAGER")
	resp := doRequest(t, app, token(t, pkgjwt.Subject{Role: "MANAGER", TenantID: testTenantID}))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testTenantID, body["tenant_id"])
	assert.Equal(t, "MANAGER", body["role"])
	assert.Equal(t, "elegido", body["selected"])
}

func TestRequireRole_ColaboradorBloqueado(t *testing.T) {
	app := buildTestApp(nil, "ADMIN", "MANAGER")
	resp := doRequest(t, app, token(t, pkgjwt.Subject{Role: "COLLABORATOR"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "FORBIDDEN")
}

func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(nil, "ADMIN")
	resp := doRequest(t, app, token(t, pkgjwt.Subject{}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp := doRequest(t, buildTestApp(nil, "ADMIN"), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	resp := doRequest(t, buildTestApp(nil, "ADMIN"), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "INVALID_TOKEN")
}

func TestAuthMiddleware_FormatoIncorrecto(t *testing.T) {
	resp := doRequest(t, buildTestApp(nil, "ADMIN"), "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SesionRevocada(t *testing.T) {
	app := buildTestApp(revokedSet{"jti-cerrada": true}, "ADMIN")
	resp := doRequest(t, app, token(t, pkgjwt.Subject{Role: "ADMIN", SessionID: "jti-cerrada"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "SESSION_REVOKED")
}

// ──────────────────────────────────────────────────────────────────────────────
// FirstLoginGate
// ──────────────────────────────────────────────────────────────────────────────

func TestFirstLoginGate_BloqueaHastaCambiarContraseña(t *testing.T) {
	app := buildTestApp(nil, "COLLABORATOR")
	resp := doRequest(t, app, token(t, pkgjwt.Subject{Role: "COLLABORATOR", FirstLogin: true}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "FIRST_LOGIN_REQUIRED")
}
