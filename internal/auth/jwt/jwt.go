package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
	ErrNotRefreshToken  = errors.New("token is not a refresh token")
	ErrEmptySecretKey   = errors.New("secret key cannot be empty")
	ErrWeakSecretKey    = errors.New("secret key must be at least 32 characters")
	ErrInvalidDuration  = errors.New("duration must be positive")
)

// Token types carried in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims represents the JWT claims.
type Claims struct {
	UserID      uint   `json:"user_id"`
	Email       string `json:"email"`
	Rol         string `json:"rol"`
	ClinicaID   *uint  `json:"clinica_id,omitempty"`
	IsSuperuser bool   `json:"is_superuser"`
	TokenType   string `json:"token_type"`
	jwt.RegisteredClaims
}

// Config represents the JWT configuration.
type Config struct {
	SecretKey       string        `yaml:"secret_key"`
	Duration        time.Duration `yaml:"duration"`
	RefreshDuration time.Duration `yaml:"refresh_duration"`
}

// Service issues and validates access and refresh tokens.
type Service struct {
	config Config
}

// NewService creates a new JWT service.
func NewService(config Config) (*Service, error) {
	if config.SecretKey == "" {
		return nil, ErrEmptySecretKey
	}
	if len(config.SecretKey) < 32 {
		return nil, ErrWeakSecretKey
	}
	if config.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if config.RefreshDuration <= 0 {
		config.RefreshDuration = 24 * time.Hour
	}
	return &Service{config: config}, nil
}

// Identity is the subject a token is issued for.
type Identity struct {
	UserID      uint
	Email       string
	Rol         string
	ClinicaID   *uint
	IsSuperuser bool
}

// GenerateToken generates a new access token.
func (s *Service) GenerateToken(id Identity) (string, error) {
	return s.generate(id, TokenTypeAccess, s.config.Duration)
}

// GenerateRefreshToken generates a new refresh token.
func (s *Service) GenerateRefreshToken(id Identity) (string, error) {
	return s.generate(id, TokenTypeRefresh, s.config.RefreshDuration)
}

func (s *Service) generate(id Identity, tokenType string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:      id.UserID,
		Email:       id.Email,
		Rol:         id.Rol,
		ClinicaID:   id.ClinicaID,
		IsSuperuser: id.IsSuperuser,
		TokenType:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.SecretKey))
}

// ValidateToken validates an access token.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateRefreshToken validates a refresh token.
func (s *Service) ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, ErrNotRefreshToken
	}
	return claims, nil
}

func (s *Service) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidAlgorithm
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
