package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/oahconnect/carelink/internal/cli/formatter"
	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/session"
)

// messagesView shows the notification feed, newest first, with a quick
// message composer. The feed is the session store's capped list.
type messagesView struct {
	state *SharedState
}

func newMessagesView(state *SharedState) *messagesView {
	return &messagesView{state: state}
}

func (v *messagesView) ID() ViewID    { return ViewMessages }
func (v *messagesView) Title() string { return "Messages" }

func (v *messagesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "new message")),
		key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
	}
}

func (v *messagesView) Init() tea.Cmd { return nil }

func (v *messagesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "m":
			return v, v.startComposeWizard()
		case "C":
			v.state.Store.ClearNotifications()
			return v, refreshViews()
		}
	}
	return v, nil
}

func (v *messagesView) startComposeWizard() tea.Cmd {
	var message string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Message").
				Placeholder("type your message...").
				Validate(validateNonEmpty).
				Value(&message),
		),
	).WithTheme(carelinkHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return notify("Message sent: "+strings.TrimSpace(message), domain.SeverityInfo)
	}
	return startWizard(v.state, "New Message", form, done)
}

func (v *messagesView) View() string {
	var b strings.Builder

	notifications := v.state.Store.Notifications
	b.WriteString("\n  " + formatter.Header("Notifications") + "\n")
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("%d of %d slots used", len(notifications), session.MaxNotifications)) + "\n\n")

	if len(notifications) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing here yet.") + "\n")
		return b.String()
	}

	for _, n := range notifications {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			formatter.SeverityIcon(n.Severity),
			formatter.Dim(n.Time),
			n.Message,
		))
	}

	return b.String()
}
