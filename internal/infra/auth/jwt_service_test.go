package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petmanager/config"
	"petmanager/internal/domain/service"
)

func testConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{JWTExpiry: ttl, BcryptCost: 4},
	}
	cfg.SecretKey.JWT = "test-secret"
	return cfg
}

func TestJWTService_IssueAndDecode(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 5*time.Second)
}

func TestJWTService_DecodeExpiredToken(t *testing.T) {
	// An already expired token must still decode; expiry is the caller's check.
	svc, err := NewJWTService(testConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Before(time.Now()))
}

func TestJWTService_DecodeRejectsTampering(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Decode(token + "x")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	_, err = svc.Decode("not-a-token")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_DecodeRejectsForeignSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := testConfig(time.Hour)
	otherCfg.SecretKey.JWT = "another-secret"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := testConfig(time.Hour)
	cfg.SecretKey.JWT = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
