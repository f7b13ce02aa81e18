package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el contexto de sesión de la aplicación.
// TenantID es el gerente dueño del contexto (vacío para administradores) y FirstLogin
// permite al middleware bloquear la app hasta el cambio de contraseña sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"user_id"`
	TenantID   string `json:"tenant_id,omitempty"`
	Role       string `json:"role"` // "ADMIN" | "MANAGER" | "COLLABORATOR"
	FirstLogin bool   `json:"first_login"`
}

// SessionID identificador de la sesión (jti), usado para revocar en logout.
func (c *Claims) SessionID() string { return c.ID }

// Subject datos del principal para firmar un token.
type Subject struct {
	UserID     string
	TenantID   string
	Role       string
	FirstLogin bool
	SessionID  string
}

// Generate genera un token JWT firmado (HS256) para el principal indicado.
func Generate(secret string, sub Subject, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sub.SessionID,
			Issuer:    issuer,
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:     sub.UserID,
		TenantID:   sub.TenantID,
		Role:       sub.Role,
		FirstLogin: sub.FirstLogin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
