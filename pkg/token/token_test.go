package token

import (
	"testing"
	"time"

	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueParse(t *testing.T) {
	m := NewManager("secret", time.Hour)

	for _, email := range []string{"a@b.com", "admin@shop.io", "UPPER@Case.org"} {
		raw, err := m.Issue(email)
		require.NoError(t, err)

		got, err := m.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, email, got)
	}
}

func TestManager_ParseRejects(t *testing.T) {
	m := NewManager("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		raw, err := NewManager("other", time.Hour).Issue("a@b.com")
		require.NoError(t, err)

		_, err = m.Parse(raw)
		assert.ErrorIs(t, err, e.ErrForbidden)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewManager("secret", time.Minute)
		expired.now = func() time.Time { return time.Now().Add(-time.Hour) }

		raw, err := expired.Issue("a@b.com")
		require.NoError(t, err)

		_, err = m.Parse(raw)
		assert.ErrorIs(t, err, e.ErrForbidden)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.ErrorIs(t, err, e.ErrForbidden)
	})
}
