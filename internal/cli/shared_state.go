package cli

import (
	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/session"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App   *App
	Store *session.Store

	// Terminal dimensions
	Width  int
	Height int
}

// Role returns the active user's role, or "" before login.
func (s *SharedState) Role() domain.Role {
	return s.Store.Role()
}

// SearchQuery returns the live search bar text shared by list views.
func (s *SharedState) SearchQuery() string {
	return s.Store.Prefs.SearchQuery
}
