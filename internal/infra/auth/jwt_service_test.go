package auth

import (
	"testing"
	"time"

	"board/config"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: ttl},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndParse(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	identityID := uuid.New()

	token, claims, err := jwtService.Issue(identityID, entity.KindHuman)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotNil(t, claims)
	assert.Equal(t, identityID, claims.IdentityID)

	parsed, err := jwtService.Parse(token)
	assert.NoError(t, err)
	assert.NotNil(t, parsed)
	assert.Equal(t, identityID, parsed.IdentityID)
	assert.Equal(t, entity.KindHuman, parsed.Kind)
	assert.NotNil(t, parsed.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), parsed.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(-time.Minute))
	assert.NoError(t, err)

	token, _, err := jwtService.Issue(uuid.New(), entity.KindHuman)
	assert.NoError(t, err)

	_, err = jwtService.Parse(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)

	_, err = jwtService.Parse("not.a.token")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig(time.Hour))
	assert.NoError(t, err)

	otherCfg := testConfig(time.Hour)
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	verifier, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, _, err := issuer.Issue(uuid.New(), entity.KindAgent)
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := testConfig(time.Hour)
	cfg.SecretKey.Access = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
