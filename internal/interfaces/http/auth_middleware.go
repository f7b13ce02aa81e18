package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-sucursal/internal/application/auth"
	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
	"github.com/jhoicas/gestor-sucursal/pkg/jwt"
)

// Locals keys con el contexto de la sesión en Fiber.
const (
	LocalUserID     = "user_id"
	LocalRole       = "role"
	LocalTenantID   = "tenant_id"
	LocalFirstLogin = "first_login"
	LocalSessionID  = "session_id"
	LocalExpiresAt  = "expires_at"
)

// Selección de tenant de un administrador.
const (
	TenantQueryParam = "tenant_id"
	TenantHeader     = "X-Tenant-ID"
)

// revocationChecker lo que el middleware necesita para rechazar sesiones cerradas.
type revocationChecker interface {
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

func unauthorized(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// AuthMiddleware valida el Bearer Token JWT, rechaza sesiones revocadas y deja el contexto
// de la sesión en c.Locals. sessions puede ser nil (sin lista de revocación).
func AuthMiddleware(jwtSecret string, sessions revocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		if claims.Role == "" {
			return unauthorized(c, "MISSING_ROLE", "el token no incluye rol")
		}
		if sessions != nil && claims.SessionID() != "" {
			revoked, err := sessions.IsRevoked(c.UserContext(), claims.SessionID())
			if err != nil {
				return err
			}
			if revoked {
				return unauthorized(c, "SESSION_REVOKED", "la sesión fue cerrada")
			}
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalTenantID, claims.TenantID)
		c.Locals(LocalFirstLogin, claims.FirstLogin)
		c.Locals(LocalSessionID, claims.SessionID())
		if claims.ExpiresAt != nil {
			c.Locals(LocalExpiresAt, claims.ExpiresAt.Time)
		}
		return c.Next()
	}
}

// FirstLoginGate bloquea la aplicación mientras la sesión tenga el cambio de contraseña pendiente.
// Debe usarse después de AuthMiddleware.
func FirstLoginGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if first, _ := c.Locals(LocalFirstLogin).(bool); first {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FIRST_LOGIN_REQUIRED",
				Message: "debe cambiar la contraseña antes de continuar",
			})
		}
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados. Debe usarse después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToUpper(r)] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return unauthorized(c, "MISSING_ROLE", "rol no encontrado en la sesión")
		}
		if _, ok := allowed[strings.ToUpper(role)]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol " + role + " no tiene acceso a este recurso",
			})
		}
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID de la sesión.
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetTenantID devuelve el tenant del token (vacío para administradores).
func GetTenantID(c *fiber.Ctx) string { return localString(c, LocalTenantID) }

// SelectedTenant gerente elegido por un administrador (?tenant_id= o X-Tenant-ID).
func SelectedTenant(c *fiber.Ctx) string {
	if t := c.Query(TenantQueryParam); t != "" {
		return t
	}
	return strings.TrimSpace(c.Get(TenantHeader))
}

// actorOf identidad del llamador para los casos de uso.
func actorOf(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{UserID: GetUserID(c), Tenant: SelectedTenant(c)}
}

// sessionOf sesión del token en curso.
func sessionOf(c *fiber.Ctx) auth.Session {
	exp, _ := c.Locals(LocalExpiresAt).(time.Time)
	return auth.Session{ID: localString(c, LocalSessionID), UserID: GetUserID(c), ExpiresAt: exp}
}
