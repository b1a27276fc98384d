// Package auth validates logins against the static demo account table.
package auth

import (
	"errors"

	"github.com/oahconnect/carelink/internal/domain"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password; callers must not mutate any state when they see it.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Gate checks credentials against a fixed user table.
type Gate struct {
	users map[string]domain.User
}

// NewGate creates a Gate with the standard three demo accounts.
func NewGate() *Gate {
	return NewGateWithUsers([]domain.User{
		{Username: "resident", Password: "pass123", Role: domain.RoleResident, Name: "Mrs. Sharma"},
		{Username: "volunteer", Password: "pass123", Role: domain.RoleVolunteer, Name: "Rahul Kumar"},
		{Username: "admin", Password: "pass123", Role: domain.RoleAdmin, Name: "Admin User"},
	})
}

// NewGateWithUsers creates a Gate with a custom account table.
func NewGateWithUsers(users []domain.User) *Gate {
	table := make(map[string]domain.User, len(users))
	for _, u := range users {
		table[u.Username] = u
	}
	return &Gate{users: table}
}

// Login validates the username and password with an exact match and
// returns the matched user. The comparison is plaintext because the
// accounts are demo fixtures, not a security boundary.
func (g *Gate) Login(username, password string) (*domain.User, error) {
	u, ok := g.users[username]
	if !ok || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// DemoUser returns the account used by the demo login shortcut.
func (g *Gate) DemoUser() (username, password string) {
	return "admin", "pass123"
}
