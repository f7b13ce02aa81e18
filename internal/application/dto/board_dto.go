package dto

import "time"

// ClockResponse hora del sistema (posiblemente simulada).
type ClockResponse struct {
	Now       time.Time `json:"now"`
	Day       int       `json:"day"`
	Slot      string    `json:"slot"`
	Simulated bool      `json:"simulated"`
}

// TravelRequest viaje en el tiempo del reloj simulado.
type TravelRequest struct {
	Day  int    `json:"day" validate:"weekday"`
	Time string `json:"time" validate:"required,hhmm"`
}

// SlotsResponse rejilla de 30 minutos ofrecida a la planeación.
type SlotsResponse struct {
	Shift string   `json:"shift,omitempty"`
	Slots []string `json:"slots"`
	Lunch []string `json:"lunch,omitempty"`
}

// BoardRow estado en vivo de un colaborador.
type BoardRow struct {
	Collaborator CollaboratorResponse `json:"collaborator"`
	Current      *ActivityResponse    `json:"current,omitempty"`
	Next         *ActivityResponse    `json:"next,omitempty"`
	AtLunch      bool                 `json:"at_lunch"`
}

// BoardResponse tablero del gerente.
type BoardResponse struct {
	Now    time.Time             `json:"now"`
	Day    int                   `json:"day"`
	Slot   string                `json:"slot"`
	Phase  string                `json:"phase,omitempty"`
	Branch *BranchConfigResponse `json:"branch,omitempty"`
	Rows   []BoardRow            `json:"rows"`
}

// AgendaResponse agenda de un colaborador para un día.
type AgendaResponse struct {
	Day       int                `json:"day"`
	IsToday   bool               `json:"is_today"`
	Current   *ActivityResponse  `json:"current,omitempty"`
	Completed []ActivityResponse `json:"completed"`
	Upcoming  []ActivityResponse `json:"upcoming"`
}

// TeamMember compañero de turno y lo que está haciendo.
type TeamMember struct {
	Collaborator CollaboratorResponse `json:"collaborator"`
	Current      *ActivityResponse    `json:"current,omitempty"`
	AtLunch      bool                 `json:"at_lunch"`
}

// TeamResponse equipo del colaborador, sin él.
type TeamResponse struct {
	Slot    string       `json:"slot"`
	Members []TeamMember `json:"members"`
}
