//go:build unit

package message_test

import (
	"testing"

	"easystay/internal/domain/message"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		m, err := message.New("Juan", "juan@example.com", "Do you have rooms available next weekend?")
		require.NoError(t, err)
		require.NotNil(t, m)

		assert.Equal(t, "Juan", m.Name())
		assert.Equal(t, "juan@example.com", m.Email())
		assert.Equal(t, "Do you have rooms available next weekend?", m.Body())
	})

	t.Run("body is trimmed before length check", func(t *testing.T) {
		_, err := message.New("Juan", "juan@example.com", "   short    ")
		require.ErrorIs(t, err, message.ErrBodyTooShort)
	})

	cases := []struct {
		name   string
		sender string
		email  string
		body   string
		errIs  error
	}{
		{name: "missing name", email: "a@b.co", body: "long enough message", errIs: message.ErrEmptyName},
		{name: "missing email", sender: "Juan", body: "long enough message", errIs: message.ErrEmptyEmail},
		{name: "malformed email", sender: "Juan", email: "nope", body: "long enough message", errIs: message.ErrInvalidEmail},
		{name: "body below minimum length", sender: "Juan", email: "a@b.co", body: "too short", errIs: message.ErrBodyTooShort},
		{name: "body exactly at minimum length", sender: "Juan", email: "a@b.co", body: "0123456789"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := message.New(c.sender, c.email, c.body)
			if c.errIs != nil {
				require.Nil(t, m)
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, m)
		})
	}
}
