package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuartcarroll/chatextract/internal/domain"
)

var (
	secretTest = []byte("test-secret")
	userTest   = domain.User{
		Uuid:  uuid.MustParse("8ee4e645-b894-4477-820b-48381e10677f"),
		Login: "test",
		Role:  domain.RoleChatUser,
	}
)

func TestNewTokens(t *testing.T) {
	tokens, err := NewTokens(userTest, time.Minute, time.Hour, secretTest)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	valid, err := ValidateToken(tokens.AccessToken, secretTest)
	require.NoError(t, err)
	assert.True(t, valid)

	userUuid, err := GetUserUuidFromToken(tokens.AccessToken, secretTest)
	require.NoError(t, err)
	assert.Equal(t, userTest.Uuid, userUuid)
}

func TestValidateToken_expired(t *testing.T) {
	tokens, err := NewTokens(userTest, -time.Minute, time.Hour, secretTest)
	require.NoError(t, err)

	valid, err := ValidateToken(tokens.AccessToken, secretTest)
	assert.False(t, valid)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_wrongSecret(t *testing.T) {
	tokens, err := NewTokens(userTest, time.Minute, time.Hour, secretTest)
	require.NoError(t, err)

	valid, err := ValidateToken(tokens.AccessToken, []byte("other-secret"))
	assert.False(t, valid)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
