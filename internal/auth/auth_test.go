package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourbill/hourbill/internal/config"
	ierr "github.com/hourbill/hourbill/internal/errors"
)

func TestValidateTokenRoundTrip(t *testing.T) {
	provider := NewProvider(config.GetDefaultConfig())

	token, err := provider.GenerateToken("user_123")
	require.NoError(t, err)

	claims, err := provider.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user_123", claims.UserID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	provider := NewProvider(config.GetDefaultConfig())

	_, err := provider.ValidateToken(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.True(t, ierr.IsUnauthenticated(err))
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	cfg := config.GetDefaultConfig()
	token, err := NewProvider(cfg).GenerateToken("user_123")
	require.NoError(t, err)

	other := config.GetDefaultConfig()
	other.Auth.Secret = "a-different-secret"

	_, err = NewProvider(other).ValidateToken(context.Background(), token)
	require.Error(t, err)
	assert.True(t, ierr.IsUnauthenticated(err))
}
