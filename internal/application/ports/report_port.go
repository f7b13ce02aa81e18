package ports

import (
	"context"
	"io"
)

// ScheduleRow fila de la agenda diaria impresa.
type ScheduleRow struct {
	Time        string
	EndTime     string
	Description string
	Status      string
}

// CollaboratorSchedule agenda de un colaborador en el reporte diario.
type CollaboratorSchedule struct {
	Name      string
	RoleTitle string
	Shift     string
	AtLunch   []string // slots de comida del turno
	Rows      []ScheduleRow
}

// DailySchedule datos del PDF de agenda diaria.
type DailySchedule struct {
	BranchName    string
	CECO          string
	Region        string
	DayName       string
	GeneratedAt   string
	Collaborators []CollaboratorSchedule
}

// SchedulePDFGenerator genera el PDF de la agenda diaria.
type SchedulePDFGenerator interface {
	GenerateDailySchedule(ctx context.Context, data DailySchedule) ([]byte, error)
}

// RosterRow colaborador leído de un roster.
type RosterRow struct {
	Row            int // fila de la hoja (1 = encabezado)
	Name           string
	EmployeeNumber string
	RoleTitle      string
	Shift          string
}

// RosterReader lee un roster de colaboradores (xlsx).
type RosterReader interface {
	ReadRoster(r io.Reader) ([]RosterRow, error)
}

// StatsSheet datos tabulares de la exportación de estadísticas.
type StatsSheet struct {
	Title   string
	Headers []string
	Rows    [][]any
	Totals  []any
}

// StatsExporter escribe las estadísticas como hoja de cálculo.
type StatsExporter interface {
	WriteStats(sheet StatsSheet) ([]byte, error)
}
