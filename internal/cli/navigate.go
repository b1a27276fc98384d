package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oahconnect/carelink/internal/domain"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes an overlay view (wizard, detail) above the tabs.
type pushViewMsg struct {
	view View
}

// refreshViewMsg tells every mounted view to reload its data. Broadcast
// after any mutation so tabs under an overlay pick up the change.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// notifyMsg records a notification in the session store and triggers a
// refresh so every view sees it.
type notifyMsg struct {
	message  string
	severity domain.Severity
}

// loginSuccessMsg is sent by the login view after the auth gate accepts.
type loginSuccessMsg struct {
	user *domain.User
}

// logoutMsg returns the UI to the login screen. Session data other than
// the identity survives.
type logoutMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the overlay stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// notify returns a tea.Cmd that records a notification.
func notify(message string, severity domain.Severity) tea.Cmd {
	return func() tea.Msg { return notifyMsg{message: message, severity: severity} }
}

// refreshViews returns a tea.Cmd that broadcasts a refresh.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
