package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/oahconnect/carelink/internal/cli/formatter"
	"github.com/oahconnect/carelink/internal/domain"
)

// profileMode selects the tab label; the content is the same
// preferences surface for every role.
type profileMode int

const (
	profileModeProfile profileMode = iota
	profileModeSettings
)

var themeColors = []string{"#4CAF50", "#2196F3", "#FF9800", "#9C27B0"}

var languages = []string{"English", "Hindi", "Tamil", "Bengali"}

// profileView shows the account details and edits the session-scoped
// display preferences.
type profileView struct {
	state *SharedState
	mode  profileMode
}

func newProfileView(state *SharedState, mode profileMode) *profileView {
	return &profileView{state: state, mode: mode}
}

func (v *profileView) ID() ViewID { return ViewProfile }

func (v *profileView) Title() string {
	if v.mode == profileModeSettings {
		return "Settings"
	}
	return "Profile"
}

func (v *profileView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "edit preferences")),
	}
}

func (v *profileView) Init() tea.Cmd { return nil }

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "p" {
		return v, v.startPreferencesWizard()
	}
	return v, nil
}

func (v *profileView) startPreferencesWizard() tea.Cmd {
	prefs := v.state.Store.Prefs
	fontStr := strconv.Itoa(prefs.FontSize)
	theme := prefs.ThemeColor
	language := prefs.Language
	notificationsOn := prefs.NotificationsEnabled

	colorOptions := make([]huh.Option[string], 0, len(themeColors))
	for _, c := range themeColors {
		colorOptions = append(colorOptions, huh.NewOption(c, c))
	}
	langOptions := make([]huh.Option[string], 0, len(languages))
	for _, l := range languages {
		langOptions = append(langOptions, huh.NewOption(l, l))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Font size (12-24)").
				Validate(validateAmount(1)).
				Value(&fontStr),
			huh.NewSelect[string]().
				Title("Theme color").
				Options(colorOptions...).
				Value(&theme),
			huh.NewSelect[string]().
				Title("Language").
				Options(langOptions...).
				Value(&language),
			huh.NewConfirm().
				Title("Notifications enabled").
				Value(&notificationsOn),
		),
	).WithTheme(carelinkHuhTheme()).WithShowHelp(false)

	store := v.state.Store
	done := func() tea.Cmd {
		size, _ := strconv.Atoi(strings.TrimSpace(fontStr))
		store.SetFontSize(size)
		store.SetThemeColor(theme)
		store.SetLanguage(language)
		store.SetNotificationsEnabled(notificationsOn)
		return notify("Preferences updated", domain.SeveritySuccess)
	}
	return startWizard(v.state, "Preferences", form, done)
}

func (v *profileView) View() string {
	user := v.state.Store.User
	prefs := v.state.Store.Prefs

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Account") + "\n\n")
	if user != nil {
		b.WriteString(metricLine("Name", user.Name))
		b.WriteString(metricLine("Username", user.Username))
		b.WriteString(metricLine("Role", string(user.Role)))
	}

	b.WriteString("\n  " + formatter.Header("Preferences") + "\n\n")
	b.WriteString(metricLine("Font size", strconv.Itoa(prefs.FontSize)))
	b.WriteString(metricLine("Theme color", prefs.ThemeColor))
	b.WriteString(metricLine("Language", prefs.Language))
	notif := "off"
	if prefs.NotificationsEnabled {
		notif = "on"
	}
	b.WriteString(metricLine("Notifications", notif))

	b.WriteString(fmt.Sprintf("\n  %s\n", formatter.Dim("p: edit preferences")))

	return b.String()
}
