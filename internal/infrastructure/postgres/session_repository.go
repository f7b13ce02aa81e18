package postgres

import (
	"context"
	"fmt"
	"time"
)

// RevokeSession registra el jti como revocado y purga los ya expirados.
func (s *Store) RevokeSession(ctx context.Context, sessionID string, expiresAt time.Time) error {
	return s.write(ctx, func(q querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM revoked_sessions WHERE expires_at < now()`); err != nil {
			return fmt.Errorf("purge revoked sessions: %w", err)
		}
		_, err := q.Exec(ctx, `
			INSERT INTO revoked_sessions (session_id, expires_at) VALUES ($1, $2)
			ON CONFLICT (session_id) DO UPDATE SET expires_at = EXCLUDED.expires_at`, sessionID, expiresAt)
		if err != nil {
			return fmt.Errorf("revoke session: %w", err)
		}
		return nil
	})
}

// IsSessionRevoked indica si el jti está revocado y aún no expira.
func (s *Store) IsSessionRevoked(ctx context.Context, sessionID string, now time.Time) (bool, error) {
	var revoked bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM revoked_sessions WHERE session_id = $1 AND expires_at > $2)`,
		sessionID, now).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("is session revoked: %w", err)
	}
	return revoked, nil
}
