package dto

import "time"

// CreateActivityRequest alta de una actividad en la agenda de un colaborador.
type CreateActivityRequest struct {
	CollaboratorID string `json:"collaborator_id" validate:"required"`
	Day            int    `json:"day" validate:"weekday"`
	Time           string `json:"time" validate:"required,hhmm"`
	EndTime        string `json:"end_time" validate:"required,hhmm"`
	Description    string `json:"description" validate:"required,max=200"`
}

// UpdateActivityRequest campos opcionales para editar una actividad.
type UpdateActivityRequest struct {
	CollaboratorID *string `json:"collaborator_id,omitempty" validate:"omitempty,min=1"`
	Day            *int    `json:"day,omitempty" validate:"omitempty,weekday"`
	Time           *string `json:"time,omitempty" validate:"omitempty,hhmm"`
	EndTime        *string `json:"end_time,omitempty" validate:"omitempty,hhmm"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=200"`
}

// SetCompletionRequest marca o reabre una actividad.
type SetCompletionRequest struct {
	Completed bool `json:"completed"`
}

// ActivityResponse actividad con su estado calculado contra el reloj del sistema.
type ActivityResponse struct {
	ID             string     `json:"id"`
	CollaboratorID string     `json:"collaborator_id"`
	Day            int        `json:"day"`
	Time           string     `json:"time"`
	EndTime        string     `json:"end_time"`
	Description    string     `json:"description"`
	Completed      bool       `json:"completed"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	Status         string     `json:"status,omitempty"`
}

// ActivityFilter filtros de listado.
type ActivityFilter struct {
	CollaboratorID string `query:"collaborator_id"`
	Day            *int   `query:"day" validate:"omitempty,weekday"`
}
