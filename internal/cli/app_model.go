package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oahconnect/carelink/internal/cli/formatter"
	"github.com/oahconnect/carelink/internal/domain"
)

// appModel is the root bubbletea Model for the TUI.
// Before login it shows the login view; after login it manages the
// role's tab set plus an overlay stack for wizards and detail views.
type appModel struct {
	state *SharedState

	login *loginView

	tabs    []View
	active  int
	overlay []View

	search    textinput.Model
	searching bool

	quitting bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:   app,
		Store: app.Store,
	}

	search := textinput.New()
	search.Placeholder = "search..."
	search.Prompt = "/ "
	search.CharLimit = 64

	return appModel{
		state:  state,
		login:  newLoginView(state),
		search: search,
	}
}

// activeTab returns the currently selected tab view, or nil.
func (m *appModel) activeTab() View {
	if len(m.tabs) == 0 || m.active >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.active]
}

// topOverlay returns the top of the overlay stack, or nil.
func (m *appModel) topOverlay() View {
	if len(m.overlay) == 0 {
		return nil
	}
	return m.overlay[len(m.overlay)-1]
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.login.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.search.Width = max(msg.Width-4, 10)
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loginSuccessMsg:
		m.state.Store.SetUser(msg.user)
		m.tabs = viewsForRole(m.state)
		m.active = 0
		m.overlay = nil
		cmds := []tea.Cmd{notify(fmt.Sprintf("Welcome %s!", msg.user.Name), domain.SeveritySuccess)}
		for _, v := range m.tabs {
			cmds = append(cmds, v.Init())
		}
		return m, tea.Batch(cmds...)

	case logoutMsg:
		m.state.Store.Logout()
		m.tabs = nil
		m.overlay = nil
		m.searching = false
		m.login = newLoginView(m.state)
		return m, m.login.Init()

	case pushViewMsg:
		m.overlay = append(m.overlay, msg.view)
		return m, msg.view.Init()

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.overlay) > 0 {
			m.overlay = m.overlay[:len(m.overlay)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews())

	case notifyMsg:
		m.state.Store.PushNotification(msg.message, msg.severity)
		return m.broadcast(refreshViewMsg{})

	case refreshViewMsg:
		return m.broadcast(msg)
	}

	return m.forward(msg)
}

// broadcast sends a message to every mounted view so tabs below an
// overlay reload data after mutations made above them.
func (m appModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i, v := range m.tabs {
		updated, cmd := v.Update(msg)
		m.tabs[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	for i, v := range m.overlay {
		updated, cmd := v.Update(msg)
		m.overlay[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// forward routes a non-key message. Every mounted view sees it: tabs
// all Init at login, so their loaded-data messages arrive while another
// tab is active.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.state.Store.LoggedIn {
		updated, cmd := m.login.Update(msg)
		m.login = updated.(*loginView)
		return m, cmd
	}
	return m.broadcast(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.state.Store.LoggedIn {
		updated, cmd := m.login.Update(msg)
		m.login = updated.(*loginView)
		return m, cmd
	}

	// Overlays (wizards) capture all input, including 'q' and '/'.
	if v := m.topOverlay(); v != nil {
		updated, cmd := v.Update(msg)
		m.overlay[len(m.overlay)-1] = updated.(View)
		return m, cmd
	}

	// Search bar captures input until enter or esc.
	if m.searching {
		switch msg.Type {
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			return m, nil
		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.state.Store.SetSearchQuery("")
			return m.broadcast(refreshViewMsg{})
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.state.Store.SetSearchQuery(m.search.Value())
		model, bcast := m.broadcast(refreshViewMsg{})
		return model, tea.Batch(cmd, bcast)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "L":
		return m, func() tea.Msg { return logoutMsg{} }

	case "tab":
		if len(m.tabs) > 0 {
			m.active = (m.active + 1) % len(m.tabs)
		}
		return m, nil

	case "shift+tab":
		if len(m.tabs) > 0 {
			m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
		}
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(m.tabs) {
			m.active = idx
		}
		return m, nil
	}

	if v := m.activeTab(); v != nil {
		updated, cmd := v.Update(msg)
		m.tabs[m.active] = updated.(View)
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	if !m.state.Store.LoggedIn {
		return m.login.View()
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.topOverlay(); v != nil {
		sections = append(sections, v.View())
	} else if v := m.activeTab(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("carelink")

	user := formatter.Dim(fmt.Sprintf("%s (%s)", m.state.Store.UserName(), m.state.Role()))

	var tabLabels []string
	for i, v := range m.tabs {
		label := fmt.Sprintf("%d:%s", i+1, v.Title())
		if i == m.active && m.topOverlay() == nil {
			tabLabels = append(tabLabels, formatter.StyleHeader.Render(label))
		} else {
			tabLabels = append(tabLabels, formatter.Dim(label))
		}
	}

	header := title + "  " + user + "  " + strings.Join(tabLabels, " ")

	if m.searching || m.search.Value() != "" {
		header += "\n" + m.search.View()
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.topOverlay(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	} else if v := m.activeTab(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		hints = append(hints,
			formatter.Dim("tab: switch"),
			formatter.Dim("/: search"),
			formatter.Dim("L: logout"),
			formatter.Dim("q: quit"),
		)
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
