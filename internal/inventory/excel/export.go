// Package excel implements the spreadsheet codec for bulk inventory
// import and export.
package excel

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/gbsalud/gbs-inventario/internal/apiserver/database"
)

// SheetName is the sheet every inventory workbook uses.
const SheetName = "Inventario"

// ExportFilename is the suggested download filename for exports.
const ExportFilename = "inventario_equipos.xlsx"

// ExportHeader lists the export columns in order.
var ExportHeader = []string{
	"Id clinica",
	"hoja_vida_id",
	"nombre_equipo",
	"marca",
	"modelo",
	"serie",
	"codigo_interno",
	"area_servicio",
	"ubicacion",
	"registro_sanitario",
	"clasificacion_riesgo",
	"clasificacion_uso",
	"fecha_adquisicion",
	"forma_adquisicion",
	"proveedor",
	"precio",
	"garantia_anios",
	"vida_util_anios",
	"voltaje_vdc",
	"voltaje_vac",
	"corriente",
	"potencia",
	"frecuencia",
	"temperatura",
	"peso",
	"frecuencia_mantenimiento_meses",
	"requiere_calibracion",
	"frecuencia_calibracion_meses",
}

// BuildInventario flattens equipment records into an xlsx workbook. Enum
// fields are rendered with their display labels.
func BuildInventario(equipos []*database.EquipoBiomedico) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range ExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for rowIdx, equipo := range equipos {
		row := rowIdx + 2
		for colIdx, value := range exportRow(equipo) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, row)
			if err != nil {
				f.Close()
				return nil, err
			}
			if value != "" {
				if err := f.SetCellValue(SheetName, cell, value); err != nil {
					f.Close()
					return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
				}
			}
		}
	}

	// Freeze the header row.
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func exportRow(e *database.EquipoBiomedico) []string {
	fecha := ""
	if e.FechaAdquisicion != nil {
		fecha = e.FechaAdquisicion.Format("2006-01-02")
	}
	calibracion := "No"
	if e.RequiereCalibracion {
		calibracion = "Sí"
	}

	return []string{
		strconv.FormatUint(uint64(e.ClinicaID), 10),
		e.HojaVidaID,
		e.NombreEquipo,
		e.Marca,
		e.Modelo,
		e.Serie,
		e.CodigoInterno,
		e.AreaServicio,
		e.Ubicacion,
		e.RegistroSanitario,
		string(e.ClasificacionRiesgo),
		e.ClasificacionUso.Label(),
		fecha,
		e.FormaAdquisicion.Label(),
		e.Proveedor,
		strDeref(e.Precio),
		strconv.FormatUint(uint64(e.GarantiaAnios), 10),
		strconv.FormatUint(uint64(e.VidaUtilAnios), 10),
		strDeref(e.VoltajeVdc),
		strDeref(e.VoltajeVac),
		strDeref(e.Corriente),
		strDeref(e.Potencia),
		strDeref(e.Frecuencia),
		strDeref(e.Temperatura),
		strDeref(e.Peso),
		strconv.FormatUint(uint64(e.FrecuenciaMantenimientoMeses), 10),
		calibracion,
		strDeref(e.FrecuenciaCalibracionMeses),
	}
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
