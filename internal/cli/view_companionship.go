package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/oahconnect/carelink/internal/cli/formatter"
	"github.com/oahconnect/carelink/internal/domain"
)

// companionshipSessionTypes are the offered ways to connect.
var companionshipSessionTypes = []string{
	"Audio Call",
	"Video Call",
	"Chat Session",
	"In-Person Visit",
}

// companionshipView lets residents schedule an emotional-support
// session or send a quick message to the support team. Both actions
// only record notifications; scheduling has no backing calendar.
type companionshipView struct {
	state *SharedState
}

func newCompanionshipView(state *SharedState) *companionshipView {
	return &companionshipView{state: state}
}

func (v *companionshipView) ID() ViewID    { return ViewCompanionship }
func (v *companionshipView) Title() string { return "Companionship" }

func (v *companionshipView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "schedule session")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "quick message")),
	}
}

func (v *companionshipView) Init() tea.Cmd { return nil }

func (v *companionshipView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "n":
			return v, v.startScheduleWizard()
		case "m":
			return v, v.startMessageWizard()
		}
	}
	return v, nil
}

func (v *companionshipView) startScheduleWizard() tea.Cmd {
	var sessionType, date, duration string

	typeOptions := make([]huh.Option[string], 0, len(companionshipSessionTypes))
	for _, t := range companionshipSessionTypes {
		typeOptions = append(typeOptions, huh.NewOption(t, t))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Session Type").
				Options(typeOptions...).
				Value(&sessionType),
			huh.NewInput().
				Title("Preferred Date").
				Placeholder("2026-09-05").
				Validate(validateNonEmpty).
				Value(&date),
			huh.NewSelect[string]().
				Title("Duration").
				Options(
					huh.NewOption("15 minutes", "15"),
					huh.NewOption("30 minutes", "30"),
					huh.NewOption("60 minutes", "60"),
				).
				Value(&duration),
		),
	).WithTheme(carelinkHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return notify(fmt.Sprintf("%s scheduled for %s", sessionType, date), domain.SeveritySuccess)
	}
	return startWizard(v.state, "Schedule Session", form, done)
}

func (v *companionshipView) startMessageWizard() tea.Cmd {
	var message string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Message to support team").
				Placeholder("How are you feeling today? Any concerns?").
				Validate(validateNonEmpty).
				Value(&message),
		),
	).WithTheme(carelinkHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return notify("Message sent to support team", domain.SeveritySuccess)
	}
	return startWizard(v.state, "Quick Message", form, done)
}

func (v *companionshipView) View() string {
	var b strings.Builder

	b.WriteString("\n  " + formatter.Header("Companionship & emotional support") + "\n\n")
	b.WriteString("  " + "A friendly volunteer is always available for a chat, a call," + "\n")
	b.WriteString("  " + "or an in-person visit." + "\n\n")

	b.WriteString("  " + formatter.Dim("Session types") + "\n")
	for _, t := range companionshipSessionTypes {
		b.WriteString("    " + formatter.StyleBlue.Render("•") + " " + t + "\n")
	}

	b.WriteString("\n  " + formatter.Dim("n: schedule a session   m: message the support team") + "\n")

	return b.String()
}
