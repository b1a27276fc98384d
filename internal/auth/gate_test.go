package auth

import (
	"testing"

	"github.com/oahconnect/carelink/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	gate := NewGate()

	u, err := gate.Login("admin", "pass123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.Equal(t, "Admin User", u.Name)

	u, err = gate.Login("resident", "pass123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleResident, u.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	gate := NewGate()

	u, err := gate.Login("admin", "wrongpass")
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	gate := NewGate()

	u, err := gate.Login("nobody", "pass123")
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_ExactMatchOnly(t *testing.T) {
	gate := NewGate()

	_, err := gate.Login("Admin", "pass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "usernames are case-sensitive")

	_, err = gate.Login("admin", "PASS123")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "passwords are case-sensitive")
}
