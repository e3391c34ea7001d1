package auth

import (
	"testing"
	"time"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	token, err := issuer.Issue(&model.User{ID: 42, Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	user, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, &model.User{ID: 42, Name: "Ada", Email: "ada@example.com"}, user)
}

func TestIssuer_Verify(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	token, err := issuer.Issue(&model.User{ID: 1})
	require.NoError(t, err)

	t.Run("Failed - wrong secret", func(t *testing.T) {
		_, err := NewIssuer("other", time.Hour).Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Failed - expired", func(t *testing.T) {
		later := NewIssuer("secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Failed - garbage", func(t *testing.T) {
		_, err := issuer.Verify("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestUserFromToken(t *testing.T) {
	t.Run("Subject claim", func(t *testing.T) {
		token, err := NewIssuer("server-only", time.Hour).Issue(&model.User{ID: 7, Name: "Grace"})
		require.NoError(t, err)

		user, err := UserFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.Equal(t, "Grace", user.Name)
	})

	t.Run("user_id claim", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 9}).SignedString([]byte("x"))
		require.NoError(t, err)

		user, err := UserFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, 9, user.ID)
	})

	t.Run("Failed - no id claim", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"name": "anon"}).SignedString([]byte("x"))
		require.NoError(t, err)

		_, err = UserFromToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Failed - malformed", func(t *testing.T) {
		_, err := UserFromToken("abc")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
