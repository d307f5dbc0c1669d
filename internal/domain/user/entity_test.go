//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"slotswap/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestNewUser(t *testing.T) {
	cases := []struct {
		name  string
		uname string
		email string
		role  user.Role
		errIs error
	}{
		{name: "valid requester", uname: "alice", email: "alice@example.com", role: user.RoleRequester},
		{name: "valid provider", uname: "pat", email: "pat@example.com", role: user.RoleProvider},
		{name: "name is trimmed", uname: "  alice  ", email: "alice@example.com", role: user.RoleRequester},
		{name: "empty name", uname: "   ", email: "alice@example.com", role: user.RoleRequester, errIs: user.ErrEmptyName},
		{name: "malformed email", uname: "alice", email: "not-an-email", role: user.RoleRequester, errIs: user.ErrInvalidEmail},
		{name: "empty email", uname: "alice", email: "", role: user.RoleRequester, errIs: user.ErrInvalidEmail},
		{name: "unknown role", uname: "alice", email: "alice@example.com", role: user.Role("admin"), errIs: user.ErrInvalidRole},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := user.NewUser(c.uname, c.email, "hashed", c.role, now)

			if c.errIs != nil {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
			assert.NotEqual(t, uuid.Nil, actual.ID())
			assert.Equal(t, strings.TrimSpace(c.uname), actual.Name())
			assert.Equal(t, c.email, actual.Email())
			assert.Equal(t, now, actual.CreatedAt())
		})
	}
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("requester")
	require.NoError(t, err)
	assert.Equal(t, user.RoleRequester, role)

	role, err = user.NewRole("provider")
	require.NoError(t, err)
	assert.Equal(t, user.RoleProvider, role)

	_, err = user.NewRole("admin")
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = user.NewRole("")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestPromote(t *testing.T) {
	u, err := user.NewUser("alice", "alice@example.com", "hashed", user.RoleRequester, now)
	require.NoError(t, err)

	require.NoError(t, u.Promote())
	assert.True(t, u.IsProvider())
	assert.False(t, u.IsRequester())

	assert.Error(t, u.Promote())
}
