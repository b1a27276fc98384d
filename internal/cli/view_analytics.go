package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oahconnect/carelink/internal/cli/formatter"
	"github.com/oahconnect/carelink/internal/contract"
)

type analyticsLoadedMsg struct {
	analytics *contract.AnalyticsResponse
	err       error
}

// analyticsView renders request and donation aggregates as textual bar
// charts for admins.
type analyticsView struct {
	state     *SharedState
	analytics *contract.AnalyticsResponse
	loading   bool
	err       error
}

func newAnalyticsView(state *SharedState) *analyticsView {
	return &analyticsView{state: state, loading: true}
}

func (v *analyticsView) ID() ViewID    { return ViewAnalytics }
func (v *analyticsView) Title() string { return "Analytics" }

func (v *analyticsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *analyticsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *analyticsView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		analytics, err := app.Overview.Analytics(context.Background())
		return analyticsLoadedMsg{analytics: analytics, err: err}
	}
}

func (v *analyticsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analyticsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.analytics = msg.analytics
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

func (v *analyticsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.analytics == nil {
		return ""
	}

	a := v.analytics
	var b strings.Builder

	b.WriteString("\n  " + formatter.Header("Requests by status") + "\n\n")
	b.WriteString(renderBuckets(a.StatusDistribution))

	b.WriteString("\n  " + formatter.Header("Requests by urgency") + "\n\n")
	b.WriteString(renderBuckets(a.UrgencyDistribution))

	b.WriteString("\n  " + formatter.Header("Requests by service") + "\n\n")
	b.WriteString(renderBuckets(a.TypeDistribution))

	b.WriteString("\n  " + formatter.Header("Donations, last 7 days") + "\n\n")
	maxAmount := 0
	for _, d := range a.DailyDonations {
		if d.Amount > maxAmount {
			maxAmount = d.Amount
		}
	}
	for _, d := range a.DailyDonations {
		bar := formatter.RenderBarChart(d.Day, d.Amount, maxAmount, 24)
		b.WriteString("  " + bar + "\n")
	}

	b.WriteString(fmt.Sprintf("\n  %s %s   %s %s   %s %s\n",
		formatter.Dim("Fulfillment"), formatter.Bold(fmt.Sprintf("%.0f%%", a.FulfillmentRatePct)),
		formatter.Dim("Avg donation"), formatter.Bold(formatter.Money(int(a.AvgDonation))),
		formatter.Dim("Largest"), formatter.Bold(formatter.Money(a.LargestDonation)),
	))

	return b.String()
}

func renderBuckets(buckets []contract.CountBucket) string {
	maxCount := 0
	for _, bucket := range buckets {
		if bucket.Count > maxCount {
			maxCount = bucket.Count
		}
	}
	var b strings.Builder
	for _, bucket := range buckets {
		b.WriteString("  " + formatter.RenderBarChart(bucket.Label, bucket.Count, maxCount, 24) + "\n")
	}
	return b.String()
}
