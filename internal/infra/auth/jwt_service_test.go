package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry/config"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/service"
	"pantry/internal/errors"
)

func newTestTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Signing = "test_signing_secret_key_very_long_for_testing"
	cfg.Token = &config.TokenConfig{
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}

	return cfg
}

func TestJWTService_IssueAndDecodeTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	subject := "zinny21@gmail.com"

	accessToken, err := jwtService.IssueAccess(subject)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, err := jwtService.IssueRefresh(subject)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	// Decode access token
	accessClaims, err := jwtService.Decode(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, subject, accessClaims.Subject)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	// Decode refresh token
	refreshClaims, err := jwtService.Decode(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, subject, refreshClaims.Subject)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)

	// Refresh tokens outlive access tokens
	assert.True(t, refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt.Time))
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.SecretKey.Signing = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	claims, err := jwtService.Decode("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTService_TamperedSignature(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	token, err := jwtService.IssueAccess("zinny21@gmail.com")
	require.NoError(t, err)

	// A token signed with a different secret must not verify.
	otherCfg := newTestTokenConfig()
	otherCfg.SecretKey.Signing = "another_secret_entirely_for_testing"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	claims, err := otherService.Decode(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret:     "test_signing_secret_key_very_long_for_testing",
		accessTTL:  -time.Minute, // already lapsed at issue time
		refreshTTL: time.Hour,
	}

	token, err := svc.IssueAccess("zinny21@gmail.com")
	require.NoError(t, err)

	claims, err := svc.Decode(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}
