package ports

import (
	"context"
	"time"
)

// Tipos de evento de actividad.
const (
	ActivityCreated   = "activity.created"
	ActivityUpdated   = "activity.updated"
	ActivityCompleted = "activity.completed"
	ActivityReopened  = "activity.reopened"
	ActivityDeleted   = "activity.deleted"
)

// ActivityEvent cambio en la agenda de un colaborador.
type ActivityEvent struct {
	Type           string    `json:"type"`
	ActivityID     string    `json:"activity_id"`
	CollaboratorID string    `json:"collaborator_id"`
	ManagerID      string    `json:"manager_id"`
	ActorID        string    `json:"actor_id"`
	Day            int       `json:"day"`
	Time           string    `json:"time"`
	EndTime        string    `json:"end_time"`
	Description    string    `json:"description"`
	Completed      bool      `json:"completed"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher publica eventos de dominio. Los fallos se registran y no revierten la operación.
type EventPublisher interface {
	Publish(ctx context.Context, evt ActivityEvent) error
	Close() error
}
