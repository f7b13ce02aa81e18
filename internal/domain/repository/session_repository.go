package repository

import (
	"context"
	"time"
)

// SessionRepository lista de sesiones (jti) revocadas antes de expirar.
type SessionRepository interface {
	// RevokeSession registra la sesión como revocada hasta expiresAt.
	RevokeSession(ctx context.Context, sessionID string, expiresAt time.Time) error
	// IsSessionRevoked indica si la sesión fue revocada y aún no expira.
	IsSessionRevoked(ctx context.Context, sessionID string, now time.Time) (bool, error)
}
