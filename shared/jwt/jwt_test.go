package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndDecodeToken(t *testing.T) {
	j := New("test-secret-key-123", time.Hour)

	tokenStr, err := j.NewToken(domain.User{Id: 42, Username: "alice"})
	require.NoError(t, err)

	token, err := j.DecodeToken(tokenStr)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["uid"])
	assert.Equal(t, "alice", claims["username"])
	assert.NotEmpty(t, claims["jti"])
}

func TestDecodeToken_Invalid(t *testing.T) {
	j := New("test-secret-key-123", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := j.DecodeToken("not.a.token")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.Unauthenticated))
	})

	t.Run("other secret", func(t *testing.T) {
		other := New("another-secret-key-456", time.Hour)
		tokenStr, err := other.NewToken(domain.User{Id: 1})
		require.NoError(t, err)

		_, err = j.DecodeToken(tokenStr)
		assert.True(t, errors.Is(err, errors.Unauthenticated))
	})

	t.Run("expired", func(t *testing.T) {
		expired := New("test-secret-key-123", -time.Minute)
		tokenStr, err := expired.NewToken(domain.User{Id: 1})
		require.NoError(t, err)

		_, err = j.DecodeToken(tokenStr)
		assert.True(t, errors.Is(err, errors.Unauthenticated))
	})
}
