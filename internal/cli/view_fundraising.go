package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/oahconnect/carelink/internal/cli/formatter"
	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/domain"
)

type fundraisingLoadedMsg struct {
	stats  *contract.DonationStats
	recent []*domain.Donation
	err    error
}

// fundraisingView shows campaign progress and recent donations, and
// hosts the donate wizard.
type fundraisingView struct {
	state   *SharedState
	stats   *contract.DonationStats
	recent  []*domain.Donation
	loading bool
	err     error
}

func newFundraisingView(state *SharedState) *fundraisingView {
	return &fundraisingView{state: state, loading: true}
}

func (v *fundraisingView) ID() ViewID    { return ViewFundraising }
func (v *fundraisingView) Title() string { return "Fundraising" }

func (v *fundraisingView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "record donation")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
	}
}

func (v *fundraisingView) Init() tea.Cmd {
	return v.loadData()
}

func (v *fundraisingView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := app.Donations.Stats(ctx)
		if err != nil {
			return fundraisingLoadedMsg{err: err}
		}
		recent, err := app.Donations.List(ctx)
		if err != nil {
			return fundraisingLoadedMsg{err: err}
		}
		return fundraisingLoadedMsg{stats: stats, recent: recent}
	}
}

func (v *fundraisingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fundraisingLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.stats = msg.stats
			v.recent = msg.recent
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "n":
			return v, v.startDonateWizard()
		case "e":
			return v, exportDonationsCmd(v.state)
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

// startDonateWizard pushes the donation form. The amount validator
// mirrors the service check so most rejections happen inline; the
// service remains the authority.
func (v *fundraisingView) startDonateWizard() tea.Cmd {
	var amountStr, donor string
	minimum := v.state.App.Config.Donations.Minimum

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Amount (minimum ₹%d)", minimum)).
				Placeholder(strconv.Itoa(minimum)).
				Validate(validateAmount(minimum)).
				Value(&amountStr),
			huh.NewInput().
				Title("Donor name (blank for anonymous)").
				Value(&donor),
		),
	).WithTheme(carelinkHuhTheme()).WithShowHelp(false)

	app := v.state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			amount, _ := strconv.Atoi(strings.TrimSpace(amountStr))
			d, err := app.Donations.Donate(context.Background(), contract.DonateInput{
				Amount: amount,
				Donor:  strings.TrimSpace(donor),
			})
			if err != nil {
				return notifyMsg{message: "Donation failed: " + err.Error(), severity: domain.SeverityError}
			}
			return notifyMsg{
				message:  fmt.Sprintf("Thank you %s for donating %s!", d.Donor, formatter.Money(d.Amount)),
				severity: domain.SeveritySuccess,
			}
		}
	}
	return startWizard(v.state, "Record Donation", form, done)
}

func exportDonationsCmd(state *SharedState) tea.Cmd {
	app := state.App
	return func() tea.Msg {
		path := "donations.csv"
		f, err := createExportFile(path)
		if err != nil {
			return notifyMsg{message: "Export failed: " + err.Error(), severity: domain.SeverityError}
		}
		defer f.Close()

		rows, err := app.Export.ExportDonations(context.Background(), f)
		if err != nil {
			return notifyMsg{message: "Export failed: " + err.Error(), severity: domain.SeverityError}
		}
		return notifyMsg{
			message:  fmt.Sprintf("Exported %d donations to %s", rows, path),
			severity: domain.SeveritySuccess,
		}
	}
}

func (v *fundraisingView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.stats == nil {
		return ""
	}

	s := v.stats
	var b strings.Builder

	b.WriteString("\n  " + formatter.Header("Campaign progress") + "\n\n")
	b.WriteString("  " + formatter.RenderProgress(s.GoalPct/100.0, 28))
	b.WriteString(fmt.Sprintf("  %s / %s\n\n",
		formatter.Bold(formatter.Money(s.Total)),
		formatter.Dim(formatter.Money(s.Goal)),
	))

	b.WriteString(metricLine("Donations", fmt.Sprintf("%d", s.Count)))
	b.WriteString(metricLine("Average", formatter.Money(int(s.Average))))
	b.WriteString(metricLine("Largest", formatter.Money(s.Largest)))

	if len(s.ByCampaign) > 0 {
		b.WriteString("\n  " + formatter.Header("By campaign") + "\n\n")
		for _, c := range s.ByCampaign {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				formatter.PadRight(c.Campaign, 20),
				formatter.Bold(formatter.Money(c.Amount)),
				formatter.Dim(fmt.Sprintf("(%d donations)", c.Count)),
			))
		}
	}

	b.WriteString("\n  " + formatter.Header("Recent donors") + "\n\n")
	if len(v.recent) == 0 {
		b.WriteString("  " + formatter.Dim("No donations yet.") + "\n")
	}
	for i, d := range v.recent {
		if i >= 8 {
			break
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			formatter.PadRight(d.Donor, 20),
			formatter.Bold(formatter.Money(d.Amount)),
			formatter.Dim(d.CreatedAt.Format("Jan 2")),
		))
	}

	return b.String()
}
