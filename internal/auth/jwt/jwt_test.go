package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "this-is-a-very-long-secret-key-for-testing"

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService(Config{SecretKey: testSecret, Duration: time.Hour, RefreshDuration: 2 * time.Hour})
	require.NoError(t, err)
	return s
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(Config{SecretKey: "", Duration: time.Hour})
	assert.ErrorIs(t, err, ErrEmptySecretKey)

	_, err = NewService(Config{SecretKey: "short", Duration: time.Hour})
	assert.ErrorIs(t, err, ErrWeakSecretKey)

	_, err = NewService(Config{SecretKey: testSecret, Duration: 0})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := newTestService(t)
	clinica := uint(3)

	tok, err := s.GenerateToken(Identity{
		UserID:    42,
		Email:     "user@example.com",
		Rol:       "ADMIN_BIOMEDICO",
		ClinicaID: &clinica,
	})
	require.NoError(t, err)

	claims, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "ADMIN_BIOMEDICO", claims.Rol)
	require.NotNil(t, claims.ClinicaID)
	assert.Equal(t, uint(3), *claims.ClinicaID)
	assert.False(t, claims.IsSuperuser)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestTokenTypeEnforcement(t *testing.T) {
	s := newTestService(t)
	id := Identity{UserID: 1, Email: "u@x.co"}

	access, err := s.GenerateToken(id)
	require.NoError(t, err)
	refresh, err := s.GenerateRefreshToken(id)
	require.NoError(t, err)

	_, err = s.ValidateToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrNotRefreshToken)

	claims, err := s.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestValidateToken_Expired(t *testing.T) {
	s, err := NewService(Config{SecretKey: testSecret, Duration: time.Nanosecond})
	require.NoError(t, err)

	tok, err := s.GenerateToken(Identity{UserID: 1, Email: "u@x.co"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = s.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongKey(t *testing.T) {
	s := newTestService(t)
	other, err := NewService(Config{SecretKey: "another-very-long-secret-key-for-testing!", Duration: time.Hour})
	require.NoError(t, err)

	tok, err := other.GenerateToken(Identity{UserID: 1, Email: "u@x.co"})
	require.NoError(t, err)

	_, err = s.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	s := newTestService(t)
	_, err := s.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
