package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oahconnect/carelink/internal/cli/formatter"
	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/domain"
)

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	overview *contract.OverviewResponse
	err      error
}

// dashboardView is the home tab for every role. It shows the headline
// metrics relevant to the role plus the most recent notifications.
type dashboardView struct {
	state    *SharedState
	overview *contract.OverviewResponse
	loading  bool
	err      error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		overview, err := app.Overview.Overview(context.Background())
		return dashboardLoadedMsg{overview: overview, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.overview = msg.overview
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.overview == nil {
		return ""
	}

	var b strings.Builder
	o := v.overview

	b.WriteString("\n  " + formatter.Header("Overview") + "\n\n")

	switch v.state.Role() {
	case domain.RoleVolunteer:
		b.WriteString(metricLine("Open tasks", fmt.Sprintf("%d", o.OpenTasks)))
		b.WriteString(metricLine("Assigned tasks", fmt.Sprintf("%d", o.AssignedTasks)))
		b.WriteString(metricLine("Active requests", fmt.Sprintf("%d", o.ActiveRequests)))
	case domain.RoleAdmin:
		b.WriteString(metricLine("Total requests", fmt.Sprintf("%d", o.TotalRequests)))
		b.WriteString(metricLine("Active requests", fmt.Sprintf("%d", o.ActiveRequests)))
		b.WriteString(metricLine("Completed", fmt.Sprintf("%d", o.CompletedRequests)))
		b.WriteString(metricLine("Volunteers", fmt.Sprintf("%d", o.VolunteerCount)))
		b.WriteString(metricLine("Fulfillment", fmt.Sprintf("%.0f%%", o.FulfillmentRatePct)))
	default:
		b.WriteString(metricLine("Active requests", fmt.Sprintf("%d", o.ActiveRequests)))
		b.WriteString(metricLine("Completed", fmt.Sprintf("%d", o.CompletedRequests)))
		b.WriteString(metricLine("Volunteers", fmt.Sprintf("%d", o.VolunteerCount)))
	}

	b.WriteString("\n  " + formatter.Dim("Fundraising  "))
	b.WriteString(formatter.RenderProgress(o.GoalPct/100.0, 20))
	b.WriteString(fmt.Sprintf("  %s / %s\n",
		formatter.Bold(formatter.Money(o.DonationTotal)),
		formatter.Dim(formatter.Money(o.Goal)),
	))

	b.WriteString("\n  " + formatter.Header("Recent activity") + "\n\n")
	notifications := v.state.Store.Notifications
	if len(notifications) == 0 {
		b.WriteString("  " + formatter.Dim("No notifications yet.") + "\n")
	}
	for i, n := range notifications {
		if i >= 5 {
			break
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			formatter.SeverityIcon(n.Severity),
			formatter.Dim(n.Time),
			n.Message,
		))
	}

	return b.String()
}

func metricLine(label, value string) string {
	return fmt.Sprintf("  %s %s\n", formatter.Dim(formatter.PadRight(label, 18)), formatter.Bold(value))
}
