package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gbsalud/gbs-inventario/internal/inventory"
)

func completeEquipo(serie string) *EquipoBiomedico {
	fecha := time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)
	precio := "1500000"
	cal := "12"
	return &EquipoBiomedico{
		ClinicaID:                  1,
		NombreEquipo:               "Monitor de signos vitales",
		Marca:                      "Mindray",
		Modelo:                     "uMEC 10",
		Serie:                      serie,
		CodigoInterno:              "MSV-001",
		AreaServicio:               "UCI",
		Ubicacion:                  "Cama 3",
		ClasificacionUso:           inventory.UsoDiagnostico,
		FechaAdquisicion:           &fecha,
		FormaAdquisicion:           inventory.AdquisicionCompraNuevo,
		VidaUtilAnios:              10,
		TecnologiaPredominante:     inventory.TecnologiaElectronico,
		RegistroSanitario:          "INVIMA 2020DM-0001",
		ClasificacionRiesgo:        inventory.RiesgoClaseIIB,
		Precio:                     &precio,
		FrecuenciaCalibracionMeses: &cal,
	}
}

func TestCheckCompleteness_Complete(t *testing.T) {
	e := completeEquipo("SN-100")
	assert.True(t, e.CheckCompleteness())
}

func TestCheckCompleteness_Incomplete(t *testing.T) {
	na := "N/A"
	noRequiere := "no requiere"
	blank := "   "

	tests := []struct {
		name   string
		mutate func(e *EquipoBiomedico)
	}{
		{"empty marca", func(e *EquipoBiomedico) { e.Marca = "" }},
		{"whitespace modelo", func(e *EquipoBiomedico) { e.Modelo = "   " }},
		{"nil fecha adquisicion", func(e *EquipoBiomedico) { e.FechaAdquisicion = nil }},
		{"nil precio", func(e *EquipoBiomedico) { e.Precio = nil }},
		{"precio N/A", func(e *EquipoBiomedico) { e.Precio = &na }},
		{"calibracion no requiere", func(e *EquipoBiomedico) { e.FrecuenciaCalibracionMeses = &noRequiere }},
		{"calibracion blank", func(e *EquipoBiomedico) { e.FrecuenciaCalibracionMeses = &blank }},
		{"registro sanitario N/A", func(e *EquipoBiomedico) { e.RegistroSanitario = "N/A" }},
		{"riesgo N/A", func(e *EquipoBiomedico) { e.ClasificacionRiesgo = inventory.RiesgoNA }},
		{"empty area servicio", func(e *EquipoBiomedico) { e.AreaServicio = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := completeEquipo("SN-X")
			tt.mutate(e)
			assert.False(t, e.CheckCompleteness())
		})
	}
}

func TestFieldComplete(t *testing.T) {
	assert.True(t, fieldComplete("valor"))
	assert.False(t, fieldComplete(""))
	assert.False(t, fieldComplete("  "))
	assert.False(t, fieldComplete("N/A"))
	assert.False(t, fieldComplete("no requiere"))
}
