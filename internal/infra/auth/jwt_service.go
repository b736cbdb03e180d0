package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pantry/config"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are signed with a single process-wide secret; access and refresh
// tokens only differ in their "type" claim and expiration.
type jwtService struct {
	secret     string        // Process-wide signing secret, read-only after startup.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret:     cfg.SecretKey.Signing,
		accessTTL:  cfg.Token.AccessTTL,
		refreshTTL: cfg.Token.RefreshTTL,
	}, nil
}

// IssueAccess creates a short-lived access token bound to the subject.
func (s *jwtService) IssueAccess(subject string) (string, error) {
	return s.generateToken(subject, s.accessTTL, service.TokenTypeAccess)
}

// IssueRefresh creates a long-lived refresh token bound to the subject.
func (s *jwtService) IssueRefresh(subject string) (string, error) {
	return s.generateToken(subject, s.refreshTTL, service.TokenTypeRefresh)
}

// Decode verifies a token string and returns its claims.
// Parse failures are mapped onto the domain token errors so callers can
// branch without knowing the JWT library.
func (s *jwtService) Decode(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domainerrors.ErrTokenMalformed.WrapMessage("failed to parse token structure")
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token expiry has lapsed")
		default:
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("token signature verification failed")
		}
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
	}

	return claims, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(subject string, ttl time.Duration, tokenType string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}
