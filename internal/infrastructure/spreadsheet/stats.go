package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
)

const statsSheet = "Estadisticas"

var _ ports.StatsExporter = (*StatsWriter)(nil)

// StatsWriter escribe la tabla de rendimiento en un libro nuevo.
type StatsWriter struct{}

// NewStatsWriter construye el exportador.
func NewStatsWriter() *StatsWriter { return &StatsWriter{} }

// WriteStats título en A1, encabezados en la fila 3, una fila por colaborador y totales al final.
func (StatsWriter) WriteStats(s ports.StatsSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), statsSheet); err != nil {
		return nil, fmt.Errorf("stats xlsx: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("stats xlsx: estilo: %w", err)
	}

	if err := f.SetCellValue(statsSheet, "A1", s.Title); err != nil {
		return nil, fmt.Errorf("stats xlsx: %w", err)
	}
	_ = f.SetCellStyle(statsSheet, "A1", "A1", bold)

	header := make([]any, len(s.Headers))
	for i, h := range s.Headers {
		header[i] = h
	}
	if err := setRow(f, 3, header); err != nil {
		return nil, err
	}
	if len(s.Headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(s.Headers), 3)
		_ = f.SetCellStyle(statsSheet, "A3", last, bold)
	}

	next := 4
	for _, r := range s.Rows {
		if err := setRow(f, next, r); err != nil {
			return nil, err
		}
		next++
	}
	if len(s.Totals) > 0 {
		if err := setRow(f, next, s.Totals); err != nil {
			return nil, err
		}
		first, _ := excelize.CoordinatesToCellName(1, next)
		last, _ := excelize.CoordinatesToCellName(len(s.Totals), next)
		_ = f.SetCellStyle(statsSheet, first, last, bold)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("stats xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(statsSheet, cell, &values); err != nil {
		return fmt.Errorf("stats xlsx: fila %d: %w", n, err)
	}
	return nil
}
