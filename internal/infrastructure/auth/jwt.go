package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iho/takeledger/internal/domain"
)

// Claims represents the JWT claims
type Claims struct {
	ParticipantID string `json:"participant_id"`
	Username      string `json:"username"`
	Admin         bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Viewer returns who the token belongs to.
func (c *Claims) Viewer() domain.Viewer {
	return domain.Viewer{ParticipantID: c.ParticipantID, Admin: c.Admin}
}

// JWTManager manages JWT token creation and validation
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// Generate generates a new JWT token for a participant
func (m *JWTManager) Generate(member *domain.Member) (string, error) {
	now := time.Now()
	claims := Claims{
		ParticipantID: member.ID,
		Username:      member.Username,
		Admin:         member.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   member.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify verifies a JWT token and returns the claims
func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			// Validate signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ParticipantID == "" {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
