// Package spreadsheet lee rosters de colaboradores y exporta estadísticas en xlsx (excelize).
package spreadsheet

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
)

// Columnas requeridas del roster (encabezado normalizado).
const (
	colName     = "nombre"
	colEmployee = "numero_empleado"
	colTitle    = "puesto"
	colShift    = "turno"
)

var requiredColumns = []string{colName, colEmployee, colTitle, colShift}

// encabezados alternativos frecuentes en rosters exportados de RH.
var headerAliases = map[string]string{
	"numero_de_empleado": colEmployee,
	"no_empleado":        colEmployee,
	"empleado":           colEmployee,
	"nombre_completo":    colName,
	"cargo":              colTitle,
	"rol":                colTitle,
}

var _ ports.RosterReader = (*RosterReader)(nil)

// RosterReader lee la primera hoja de un libro xlsx.
type RosterReader struct{}

// NewRosterReader construye el lector.
func NewRosterReader() *RosterReader { return &RosterReader{} }

// ReadRoster devuelve una fila por colaborador. El encabezado se reconoce sin importar
// mayúsculas, acentos ni espacios ("Número de Empleado" = numero_empleado); las filas vacías se omiten.
func (RosterReader) ReadRoster(r io.Reader) ([]ports.RosterRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("roster: abrir libro: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("roster: leer filas: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("roster: hoja %q vacía", sheet)
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		key := normalizeHeader(h)
		if alias, ok := headerAliases[key]; ok {
			key = alias
		}
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("roster: falta la columna %q", c)
		}
	}

	cell := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]ports.RosterRow, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rr := ports.RosterRow{
			Row:            n + 2,
			Name:           cell(row, colName),
			EmployeeNumber: cell(row, colEmployee),
			RoleTitle:      cell(row, colTitle),
			Shift:          strings.ToUpper(cell(row, colShift)),
		}
		if rr.Name == "" && rr.EmployeeNumber == "" && rr.RoleTitle == "" && rr.Shift == "" {
			continue
		}
		out = append(out, rr)
	}
	return out, nil
}

// normalizeHeader minúsculas, sin acentos y con "_" en lugar de espacios.
func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(strings.TrimSpace(h)) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsSpace(r) || r == '-':
			b.WriteRune('_')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
