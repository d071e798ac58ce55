package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// requiredColumns must all be present in the header row of an uploaded
// workbook. Matching is case-insensitive.
var requiredColumns = []string{
	"nombre_equipo",
	"marca",
	"modelo",
	"serie",
	"codigo_interno",
	"ubicacion",
	"area_servicio",
	"registro_sanitario",
}

// ImportRow is one equipment row parsed from an uploaded workbook. Fila is
// the 1-based spreadsheet row the values came from, for error reporting.
type ImportRow struct {
	Fila              int
	NombreEquipo      string
	Marca             string
	Modelo            string
	Serie             string
	CodigoInterno     string
	Ubicacion         string
	AreaServicio      string
	RegistroSanitario string
}

// MissingColumnsError reports header columns absent from an uploaded
// workbook.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// ParseInventario reads the first sheet of an xlsx workbook and returns its
// equipment rows. The header row is matched by column name, so column order
// does not matter. Rows whose nombre_equipo and serie are both empty are
// skipped.
func ParseInventario(r io.Reader) ([]ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &MissingColumnsError{Columns: requiredColumns}
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		colIdx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	cell := func(row []string, col string) string {
		idx := colIdx[col]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var out []ImportRow
	for i, row := range rows[1:] {
		r := ImportRow{
			Fila:              i + 2,
			NombreEquipo:      cell(row, "nombre_equipo"),
			Marca:             cell(row, "marca"),
			Modelo:            cell(row, "modelo"),
			Serie:             cell(row, "serie"),
			CodigoInterno:     cell(row, "codigo_interno"),
			Ubicacion:         cell(row, "ubicacion"),
			AreaServicio:      cell(row, "area_servicio"),
			RegistroSanitario: cell(row, "registro_sanitario"),
		}
		if r.NombreEquipo == "" && r.Serie == "" {
			continue
		}
		out = append(out, r)
	}

	return out, nil
}
