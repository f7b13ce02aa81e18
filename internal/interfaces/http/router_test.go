package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestor-sucursal/internal/application/auth"
	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/demo"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/events"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/memory"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/pdf"
	"github.com/jhoicas/gestor-sucursal/internal/infrastructure/spreadsheet"
	apphttp "github.com/jhoicas/gestor-sucursal/internal/interfaces/http"
	"github.com/jhoicas/gestor-sucursal/pkg/clock"
)

// ──────────────────────────────────────────────────────────────────────────────
// App completa sobre el store en memoria con datos de demo (lunes 09:45)
// ──────────────────────────────────────────────────────────────────────────────

var monday = time.Date(2026, 10, 19, 9, 45, 0, 0, time.UTC)

func newServer(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	store, err := memory.NewSeeded(ctx, hasher.Hash, monday)
	require.NoError(t, err)
	clk := clock.NewSimulated(monday)

	deps := apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(store, hasher, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}, nil),
		ActivityUC:     usecase.NewActivityUseCase(store, clk, events.Noop{}, nil),
		CollaboratorUC: usecase.NewCollaboratorUseCase(store, hasher, "123", spreadsheet.NewRosterReader(), clk, nil),
		ManagerUC:      usecase.NewManagerUseCase(store, hasher, clk, nil),
		TenantConfigUC: usecase.NewTenantConfigUseCase(store, nil),
		DashboardUC:    usecase.NewDashboardUseCase(store, clk),
		ClockUC:        usecase.NewClockUseCase(store, clk, nil),
		StatsUC:        usecase.NewStatsUseCase(store, clk, spreadsheet.NewStatsWriter()),
		ReportUC:       usecase.NewReportUseCase(store, clk, pdf.NewMarotoScheduleGenerator()),
		JWTSecret:      testJWTSecret,
	}
	return apphttp.NewServer(apphttp.ServerConfig{AppName: "test"}, deps, store, nil)
}

func call(t *testing.T, app *fiber.App, method, path, bearer string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func login(t *testing.T, app *fiber.App, employeeNumber, password string) dto.LoginResponse {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{EmployeeNumber: employeeNumber, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.LoginResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth y primer acceso
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := newServer(t)
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{EmployeeNumber: "EMP002", Password: "mala"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{EmployeeNumber: "EMP002"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPrimerAcceso_FlujoCompleto(t *testing.T) {
	app := newServer(t)
	first := login(t, app, "EMP001", "123")
	require.True(t, first.User.IsFirstLogin)

	resp := call(t, app, http.MethodGet, "/api/agenda", first.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/auth/me", first.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/auth/change-password", first.Token,
		dto.ChangePasswordRequest{NewPassword: "abc", ConfirmPassword: "abc"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/auth/change-password", first.Token,
		dto.ChangePasswordRequest{NewPassword: "nueva1", ConfirmPassword: "nueva1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fresh := decode[dto.LoginResponse](t, resp)
	assert.False(t, fresh.User.IsFirstLogin)

	// el token anterior queda revocado
	resp = call(t, app, http.MethodGet, "/api/auth/me", first.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/agenda", fresh.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	agenda := decode[dto.AgendaResponse](t, resp)
	require.NotNil(t, agenda.Current)
	assert.Equal(t, "Revisión de Bóveda", agenda.Current.Description)

	again := login(t, app, "EMP001", "nueva1")
	assert.False(t, again.User.IsFirstLogin)
}

func TestLogout_RevocaElToken(t *testing.T) {
	app := newServer(t)
	s := login(t, app, "ADMIN01", "admin")

	resp := call(t, app, http.MethodPost, "/api/auth/logout", s.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/board", s.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gerente
// ──────────────────────────────────────────────────────────────────────────────

func TestGerente_AgendaYTablero(t *testing.T) {
	app := newServer(t)
	s := login(t, app, "ADMIN01", "admin")

	resp := call(t, app, http.MethodPost, "/api/activities", s.Token, dto.CreateActivityRequest{
		CollaboratorID: demo.ID("EMP002"), Day: 1, Time: "10:00", EndTime: "10:30", Description: "Atención Ventanilla",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ActivityResponse](t, resp)
	assert.Equal(t, "UPCOMING", created.Status)

	resp = call(t, app, http.MethodPost, "/api/activities", s.Token, dto.CreateActivityRequest{
		CollaboratorID: demo.ID("EMP002"), Day: 1, Time: "11:00", EndTime: "10:30", Description: "Atención Ventanilla",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "INVALID_TIME_RANGE")

	resp = call(t, app, http.MethodPost, "/api/activities", s.Token, dto.CreateActivityRequest{
		CollaboratorID: demo.ID("EMP002"), Day: 1, Time: "25:00", EndTime: "10:30", Description: "Atención Ventanilla",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/board", s.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	board := decode[dto.BoardResponse](t, resp)
	assert.Len(t, board.Rows, 4)
	assert.Equal(t, "MATUTINO", board.Phase)

	resp = call(t, app, http.MethodDelete, "/api/activities/"+created.ID, s.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/managers", s.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGerente_Reportes(t *testing.T) {
	app := newServer(t)
	s := login(t, app, "ADMIN01", "admin")

	resp := call(t, app, http.MethodGet, "/api/stats?range=WEEK", s.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[dto.StatsResponse](t, resp)
	assert.Equal(t, int64(60), st.GlobalPercentage)

	resp = call(t, app, http.MethodGet, "/api/stats?range=MES", s.Token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/reports/daily-schedule?day=1", s.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.True(t, bytes.HasPrefix([]byte(bodyString(t, resp)), []byte("%PDF")))

	resp = call(t, app, http.MethodGet, "/api/stats/export", s.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "rendimiento-day.xlsx")
}

func TestCatalogo_DuplicadoResponde200(t *testing.T) {
	app := newServer(t)
	s := login(t, app, "ADMIN01", "admin")

	resp := call(t, app, http.MethodPost, "/api/branch/activity-types", s.Token, dto.ActivityDefinitionRequest{Name: "Arqueo"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = call(t, app, http.MethodPost, "/api/branch/activity-types", s.Token, dto.ActivityDefinitionRequest{Name: "Arqueo"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/branch", s.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	info := decode[dto.BranchInfoResponse](t, resp)
	assert.Len(t, info.Catalog, 11)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administrador y selección de tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestAdministrador_RequiereTenantParaMutar(t *testing.T) {
	app := newServer(t)
	s := login(t, app, "admin", "root")

	resp := call(t, app, http.MethodPost, "/api/branch/contacts", s.Token, dto.EmergencyContactRequest{Name: "Cruz Roja", Phone: "065"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "TENANT_REQUIRED")

	resp = call(t, app, http.MethodPost, "/api/branch/contacts?tenant_id="+demo.ManagerID, s.Token,
		dto.EmergencyContactRequest{Name: "Cruz Roja", Phone: "065"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/collaborators?tenant_id=no-existe", s.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/managers", s.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	managers := decode[[]dto.ManagerResponse](t, resp)
	require.Len(t, managers, 1)
	assert.Equal(t, 4, managers[0].CollaboratorCount)

	resp = call(t, app, http.MethodDelete, "/api/managers/"+demo.ManagerID, s.Token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Colaborador
// ──────────────────────────────────────────────────────────────────────────────

func TestColaborador_SoloSusActividades(t *testing.T) {
	app := newServer(t)
	s := login(t, app, "EMP002", "123")

	resp := call(t, app, http.MethodPatch, "/api/activities/"+demo.ID("act-103")+"/completion", s.Token,
		dto.SetCompletionRequest{Completed: true})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodPatch, "/api/activities/"+demo.ID("act-104")+"/completion", s.Token,
		dto.SetCompletionRequest{Completed: false})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	a := decode[dto.ActivityResponse](t, resp)
	assert.False(t, a.Completed)
	assert.Nil(t, a.CompletedAt)

	resp = call(t, app, http.MethodGet, "/api/team", s.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	team := decode[dto.TeamResponse](t, resp)
	assert.Len(t, team.Members, 3)

	resp = call(t, app, http.MethodGet, "/api/board", s.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = call(t, app, http.MethodPost, "/api/collaborators", s.Token, dto.CreateCollaboratorRequest{})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHealthYMetricas(t *testing.T) {
	app := newServer(t)
	resp := call(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "gestor_sucursal_")
}
