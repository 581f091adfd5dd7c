package jwt_test

import (
	"testing"
	"time"

	"moviecatalog/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	t.Run("round trips the subject", func(t *testing.T) {
		p := jwt.NewProvider("secret", time.Minute)

		token, err := p.Issue("catalog-cli")
		require.NoError(t, err)

		subject, err := p.Subject(token)
		require.NoError(t, err)
		assert.Equal(t, "catalog-cli", subject)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewProvider("other", time.Minute).Issue("catalog-cli")
		require.NoError(t, err)

		_, err = jwt.NewProvider("secret", time.Minute).Subject(token)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		p := jwt.NewProvider("secret", -time.Minute)

		token, err := p.Issue("catalog-cli")
		require.NoError(t, err)

		_, err = p.Subject(token)
		assert.Error(t, err)
	})

	t.Run("requires a secret and a subject", func(t *testing.T) {
		_, err := jwt.NewProvider("", time.Minute).Issue("catalog-cli")
		assert.Error(t, err)

		_, err = jwt.NewProvider("secret", time.Minute).Issue("")
		assert.Error(t, err)
	})
}
