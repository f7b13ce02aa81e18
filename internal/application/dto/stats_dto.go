package dto

// Rangos de estadísticas.
const (
	RangeDay  = "DAY"
	RangeWeek = "WEEK"
)

// StatsQuery rango de cálculo.
type StatsQuery struct {
	Range string `query:"range" validate:"omitempty,oneof=DAY WEEK"`
}

// CollaboratorStats cumplimiento de un colaborador.
type CollaboratorStats struct {
	CollaboratorID string `json:"collaborator_id"`
	Name           string `json:"name"`
	RoleTitle      string `json:"role_title"`
	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	Percentage     int64  `json:"percentage"`
	MostExecuted   string `json:"most_executed"`
	BestExecuted   string `json:"best_executed"`
}

// StatsResponse rendimiento del equipo.
type StatsResponse struct {
	Range            string              `json:"range"`
	Day              int                 `json:"day"`
	GlobalTotal      int                 `json:"global_total"`
	GlobalCompleted  int                 `json:"global_completed"`
	GlobalPercentage int64               `json:"global_percentage"`
	Collaborators    []CollaboratorStats `json:"collaborators"`
}
