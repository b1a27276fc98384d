package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/oahconnect/carelink/internal/cli/formatter"
	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/domain"
)

// requestsMode selects whose requests the tab shows.
type requestsMode int

const (
	// requestsModeResident scopes the listing to the logged-in resident
	// and offers the new-request wizard.
	requestsModeResident requestsMode = iota
	// requestsModeAdmin shows every request with the resident column and
	// offers CSV export.
	requestsModeAdmin
)

// requestServiceTypes are the offered categories for a new request.
var requestServiceTypes = []string{
	"Grocery Shopping",
	"Medical Escort",
	"Meal Delivery",
	"House Cleaning",
	"Companionship Visit",
	"Medicine Pickup",
}

type requestsLoadedMsg struct {
	requests []*domain.ServiceRequest
	err      error
}

type requestsView struct {
	state    *SharedState
	mode     requestsMode
	requests []*domain.ServiceRequest
	loading  bool
	err      error

	cursor         int
	statusIdx      int // 0 = all, 1.. indexes domain.AllRequestStatuses
	urgencyIdx     int // 0 = all, 1.. indexes domain.AllUrgencies
	typeIdx        int // 0 = all, 1.. indexes requestServiceTypes
	sortIdx        int
	residentFilter string
}

var requestSortCycle = []contract.RequestSort{
	contract.SortNewestFirst,
	contract.SortOldestFirst,
	contract.SortMostUrgent,
}

func newRequestsView(state *SharedState, mode requestsMode) *requestsView {
	return &requestsView{state: state, mode: mode, loading: true}
}

func (v *requestsView) ID() ViewID { return ViewRequests }

func (v *requestsView) Title() string {
	if v.mode == requestsModeAdmin {
		return "Requests"
	}
	return "My Requests"
}

func (v *requestsView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter status")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	}
	if v.mode == requestsModeResident {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new request")))
	} else {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "filter urgency")),
			key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "filter type")),
			key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "filter resident")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")))
	}
	return bindings
}

func (v *requestsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *requestsView) filter() contract.RequestFilter {
	f := contract.RequestFilter{Query: v.state.SearchQuery()}
	if v.statusIdx > 0 {
		f.Status = domain.AllRequestStatuses[v.statusIdx-1]
	}
	if v.mode == requestsModeResident {
		f.Resident = v.state.Store.UserName()
		return f
	}
	if v.urgencyIdx > 0 {
		f.Urgency = domain.AllUrgencies[v.urgencyIdx-1]
	}
	if v.typeIdx > 0 {
		f.Type = requestServiceTypes[v.typeIdx-1]
	}
	f.Resident = v.residentFilter
	return f
}

func (v *requestsView) loadData() tea.Cmd {
	app := v.state.App
	filter := v.filter()
	by := requestSortCycle[v.sortIdx]
	return func() tea.Msg {
		requests, err := app.Requests.List(context.Background(), filter, by)
		return requestsLoadedMsg{requests: requests, err: err}
	}
}

func (v *requestsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case requestsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.requests = msg.requests
			if v.cursor >= len(v.requests) {
				v.cursor = max(0, len(v.requests)-1)
			}
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.requests)-1 {
				v.cursor++
			}
		case "f":
			v.statusIdx = (v.statusIdx + 1) % (len(domain.AllRequestStatuses) + 1)
			v.loading = true
			return v, v.loadData()
		case "s":
			v.sortIdx = (v.sortIdx + 1) % len(requestSortCycle)
			v.loading = true
			return v, v.loadData()
		case "u":
			if v.mode == requestsModeAdmin {
				v.urgencyIdx = (v.urgencyIdx + 1) % (len(domain.AllUrgencies) + 1)
				v.loading = true
				return v, v.loadData()
			}
		case "t":
			if v.mode == requestsModeAdmin {
				v.typeIdx = (v.typeIdx + 1) % (len(requestServiceTypes) + 1)
				v.loading = true
				return v, v.loadData()
			}
		case "R":
			if v.mode == requestsModeAdmin {
				return v, v.startResidentFilterWizard()
			}
		case "n":
			if v.mode == requestsModeResident {
				return v, v.startCreateWizard()
			}
		case "e":
			if v.mode == requestsModeAdmin {
				return v, exportRequestsCmd(v.state, v.filter())
			}
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

// startCreateWizard pushes the new-request form. On submit the request
// is created through the service; a validation failure surfaces as an
// error notification and no row is written.
func (v *requestsView) startCreateWizard() tea.Cmd {
	var input contract.CreateRequestInput
	input.Resident = v.state.Store.UserName()

	typeOptions := make([]huh.Option[string], 0, len(requestServiceTypes))
	for _, t := range requestServiceTypes {
		typeOptions = append(typeOptions, huh.NewOption(t, t))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Service Type").
				Options(typeOptions...).
				Value(&input.Type),
			huh.NewInput().
				Title("Description").
				Placeholder("what do you need help with?").
				Validate(validateNonEmpty).
				Value(&input.Description),
			huh.NewInput().
				Title("Preferred Time").
				Placeholder("10:00 AM").
				Value(&input.PreferredTime),
			huh.NewSelect[domain.Urgency]().
				Title("Urgency").
				Options(urgencyOptions()...).
				Value(&input.Urgency),
		),
	).WithTheme(carelinkHuhTheme()).WithShowHelp(false)

	app := v.state.App
	done := func() tea.Cmd {
		return func() tea.Msg {
			req, err := app.Requests.Create(context.Background(), input)
			if err != nil {
				return notifyMsg{message: "Request failed: " + err.Error(), severity: domain.SeverityError}
			}
			return notifyMsg{
				message:  fmt.Sprintf("Request %s submitted (%s)", req.ID, req.Type),
				severity: domain.SeveritySuccess,
			}
		}
	}

	return startWizard(v.state, "New Request", form, done)
}

// startResidentFilterWizard asks for an exact resident name to scope
// the board to; a blank value clears the filter.
func (v *requestsView) startResidentFilterWizard() tea.Cmd {
	resident := v.residentFilter

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Resident (blank for all)").
				Placeholder("Mrs. Sharma").
				Value(&resident),
		),
	).WithTheme(carelinkHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		v.residentFilter = strings.TrimSpace(resident)
		return nil
	}
	return startWizard(v.state, "Filter by Resident", form, done)
}

// exportRequestsCmd writes the CSV next to the working directory and
// reports the outcome as a notification. The filter mirrors what the
// board currently shows, so the file matches the screen.
func exportRequestsCmd(state *SharedState, filter contract.RequestFilter) tea.Cmd {
	app := state.App
	return func() tea.Msg {
		path := "requests.csv"
		f, err := createExportFile(path)
		if err != nil {
			return notifyMsg{message: "Export failed: " + err.Error(), severity: domain.SeverityError}
		}
		defer f.Close()

		rows, err := app.Export.ExportRequests(context.Background(), f, filter)
		if err != nil {
			return notifyMsg{message: "Export failed: " + err.Error(), severity: domain.SeverityError}
		}
		return notifyMsg{
			message:  fmt.Sprintf("Exported %d requests to %s", rows, path),
			severity: domain.SeveritySuccess,
		}
	}
}

func (v *requestsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder

	statusLabel := "All"
	if v.statusIdx > 0 {
		statusLabel = string(domain.AllRequestStatuses[v.statusIdx-1])
	}
	b.WriteString(fmt.Sprintf("\n  %s %s  %s %s",
		formatter.Dim("status:"), formatter.Bold(statusLabel),
		formatter.Dim("sort:"), formatter.Bold(string(requestSortCycle[v.sortIdx])),
	))
	if v.mode == requestsModeAdmin {
		urgencyLabel := "All"
		if v.urgencyIdx > 0 {
			urgencyLabel = string(domain.AllUrgencies[v.urgencyIdx-1])
		}
		typeLabel := "All"
		if v.typeIdx > 0 {
			typeLabel = requestServiceTypes[v.typeIdx-1]
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s %s",
			formatter.Dim("urgency:"), formatter.Bold(urgencyLabel),
			formatter.Dim("type:"), formatter.Bold(typeLabel),
		))
		if v.residentFilter != "" {
			b.WriteString(fmt.Sprintf("  %s %s",
				formatter.Dim("resident:"), formatter.Bold(v.residentFilter)))
		}
	}
	b.WriteString("\n\n")

	if len(v.requests) == 0 {
		b.WriteString("  " + formatter.Dim("No requests match.") + "\n")
		return b.String()
	}

	headers := []string{"", "ID", "Service", "Urgency", "Status", "Volunteer"}
	if v.mode == requestsModeAdmin {
		headers = append(headers, "Resident")
	}

	rows := make([][]string, 0, len(v.requests))
	for i, r := range v.requests {
		cursor := " "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸")
		}
		row := []string{
			cursor,
			formatter.StyleGreen.Render(r.ID),
			formatter.PadRight(r.Type, 20),
			formatter.UrgencyPill(r.Urgency),
			formatter.StatusPill(r.Status),
			r.Volunteer,
		}
		if v.mode == requestsModeAdmin {
			row = append(row, r.Resident)
		}
		rows = append(rows, row)
	}

	b.WriteString(indent(formatter.RenderTable(headers, rows), 2))

	if v.cursor < len(v.requests) {
		r := v.requests[v.cursor]
		b.WriteString("\n  " + formatter.Dim("› ") + r.Description + "\n")
	}

	return b.String()
}

// indent prefixes every line of block with n spaces.
func indent(block string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
