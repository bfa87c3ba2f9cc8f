//go:build unit

package guest_test

import (
	"testing"

	"easystay/internal/domain/guest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		g, err := guest.New("Maria", "Santos", "maria@example.com", "+63-917-555-0101")
		require.NoError(t, err)
		require.NotNil(t, g)

		assert.Equal(t, "Maria", g.FirstName())
		assert.Equal(t, "Santos", g.LastName())
		assert.Equal(t, "maria@example.com", g.Email())
		assert.Equal(t, "+63-917-555-0101", g.Phone())
		assert.Equal(t, "Maria Santos", g.FullName())
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		g, err := guest.New("  Maria ", " Santos ", " maria@example.com ", " 0917 ")
		require.NoError(t, err)

		assert.Equal(t, "Maria", g.FirstName())
		assert.Equal(t, "maria@example.com", g.Email())
	})

	cases := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		phone     string
		errIs     error
	}{
		{name: "missing first name", lastName: "Santos", email: "a@b.co", phone: "1", errIs: guest.ErrEmptyFirstName},
		{name: "missing last name", firstName: "Maria", email: "a@b.co", phone: "1", errIs: guest.ErrEmptyLastName},
		{name: "missing email", firstName: "Maria", lastName: "Santos", phone: "1", errIs: guest.ErrEmptyEmail},
		{name: "malformed email", firstName: "Maria", lastName: "Santos", email: "not-an-email", phone: "1", errIs: guest.ErrInvalidEmail},
		{name: "email with spaces", firstName: "Maria", lastName: "Santos", email: "a b@c.co", phone: "1", errIs: guest.ErrInvalidEmail},
		{name: "missing phone", firstName: "Maria", lastName: "Santos", email: "a@b.co", errIs: guest.ErrEmptyPhone},
		{name: "whitespace only first name", firstName: "   ", lastName: "Santos", email: "a@b.co", phone: "1", errIs: guest.ErrEmptyFirstName},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := guest.New(c.firstName, c.lastName, c.email, c.phone)
			require.Nil(t, g)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}
