package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oahconnect/carelink/internal/cli/formatter"
)

// loginView is the authentication gate shown before any tab. It holds
// username and password inputs; a failed attempt shows an inline error
// and changes nothing else.
type loginView struct {
	state    *SharedState
	username textinput.Model
	password textinput.Model
	focused  int
	errMsg   string
}

func newLoginView(state *SharedState) *loginView {
	username := textinput.New()
	username.Placeholder = "username"
	username.Prompt = "  Username  "
	username.CharLimit = 32
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "  Password  "
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &loginView{
		state:    state,
		username: username,
		password: password,
	}
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "Login" }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in")),
		key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "demo login")),
	}
}

func (v *loginView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
			v.toggleFocus()
			return v, textinput.Blink

		case tea.KeyCtrlD:
			username, password := v.state.App.Gate.DemoUser()
			v.username.SetValue(username)
			v.password.SetValue(password)
			return v, v.submit()

		case tea.KeyEnter:
			if v.focused == 0 {
				v.toggleFocus()
				return v, textinput.Blink
			}
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	if v.focused == 0 {
		v.username, cmd = v.username.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return v, cmd
}

func (v *loginView) toggleFocus() {
	if v.focused == 0 {
		v.focused = 1
		v.username.Blur()
		v.password.Focus()
	} else {
		v.focused = 0
		v.password.Blur()
		v.username.Focus()
	}
}

// submit validates the credentials against the gate. On failure the
// inputs keep their values so the user can correct a typo.
func (v *loginView) submit() tea.Cmd {
	user, err := v.state.App.Gate.Login(v.username.Value(), v.password.Value())
	if err != nil {
		v.errMsg = "Invalid username or password."
		return nil
	}
	v.errMsg = ""
	return func() tea.Msg { return loginSuccessMsg{user: user} }
}

func (v *loginView) View() string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString("  " + formatter.StylePurple.Render("carelink") + "\n")
	b.WriteString("  " + formatter.Dim("community care coordination") + "\n\n")

	b.WriteString(v.username.View() + "\n")
	b.WriteString(v.password.View() + "\n\n")

	if v.errMsg != "" {
		b.WriteString("  " + formatter.StyleRed.Render(v.errMsg) + "\n\n")
	}

	b.WriteString("  " + formatter.Dim("enter: sign in   ctrl+d: demo login   ctrl+c: quit") + "\n")

	return b.String()
}
