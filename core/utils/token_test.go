package utils

import (
	"testing"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/config"
	"github.com/dancoopper/COMP3074-MobileApp/core/constants"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := config.Load()
	require.NoError(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	loadTestConfig(t)
	userID := uuid.New()

	token, err := GenerateToken(userID, "jane@example.com", constants.ScopeTokenAccess)
	require.NoError(t, err)

	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, constants.ScopeTokenAccess, claims.Scope)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	loadTestConfig(t)

	token, err := GenerateToken(uuid.New(), "jane@example.com", constants.ScopeTokenAccess)
	require.NoError(t, err)

	_, err = ValidateAndParseToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateAndParseToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenRemainingTTL(t *testing.T) {
	loadTestConfig(t)

	token, err := GenerateToken(uuid.New(), "jane@example.com", constants.ScopeTokenAccess)
	require.NoError(t, err)
	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)

	ttl := TokenRemainingTTL(claims)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Duration(config.Get().JWT.AccessTokenTTL)*time.Minute)

	assert.Equal(t, time.Duration(0), TokenRemainingTTL(&TokenClaims{}))
}
