package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolValid(t *testing.T) {
	assert.True(t, RolMaster.Valid())
	assert.True(t, RolAdminBiomedico.Valid())
	assert.True(t, RolBasico.Valid())
	assert.False(t, Rol("GERENTE").Valid())
	assert.False(t, Rol("").Valid())
}

func TestTipoParametroValid(t *testing.T) {
	assert.True(t, ParametroPresion.Valid())
	assert.True(t, ParametroSpO2.Valid())
	assert.False(t, TipoParametro("HUMEDAD").Valid())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Diagnóstico", UsoDiagnostico.Label())
	assert.Equal(t, "Compra (Nuevo)", AdquisicionCompraNuevo.Label())
	assert.Equal(t, "En Funcionamiento", EstadoFuncional.Label())
	assert.Equal(t, "Electrónico", TecnologiaElectronico.Label())
	assert.Equal(t, "Presión (PSI)", ParametroPresion.Label())
	assert.Equal(t, "Usuario Básico", RolBasico.Label())
}

func TestLabels_UnknownCodeFallsThrough(t *testing.T) {
	assert.Equal(t, "ALGO", ClasificacionUso("ALGO").Label())
	assert.Equal(t, "OTRA", Rol("OTRA").Label())
}
