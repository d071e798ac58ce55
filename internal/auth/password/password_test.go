package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("mi-contraseña-segura")
	require.NoError(t, err)
	assert.NotEqual(t, "mi-contraseña-segura", hashed)

	assert.True(t, Verify(hashed, "mi-contraseña-segura"))
	assert.False(t, Verify(hashed, "otra-contraseña"))
}

func TestHash_Salted(t *testing.T) {
	h1, err := Hash("misma")
	require.NoError(t, err)
	h2, err := Hash("misma")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerify_BadHash(t *testing.T) {
	assert.False(t, Verify("not-a-bcrypt-hash", "whatever"))
}
