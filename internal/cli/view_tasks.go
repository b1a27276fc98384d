package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oahconnect/carelink/internal/cli/formatter"
	"github.com/oahconnect/carelink/internal/domain"
)

type tasksLoadedMsg struct {
	tasks []*domain.VolunteerTask
	err   error
}

// tasksView is the volunteer task board. Volunteers claim open tasks;
// admins see the same board read-only.
type tasksView struct {
	state   *SharedState
	tasks   []*domain.VolunteerTask
	loading bool
	err     error
	cursor  int
}

func newTasksView(state *SharedState) *tasksView {
	return &tasksView{state: state, loading: true}
}

func (v *tasksView) ID() ViewID { return ViewTasks }

func (v *tasksView) Title() string {
	if v.state.Role() == domain.RoleAdmin {
		return "Tasks"
	}
	return "My Tasks"
}

func (v *tasksView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
	if v.state.Role() == domain.RoleVolunteer {
		bindings = append([]key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept task")),
		}, bindings...)
	}
	return bindings
}

func (v *tasksView) Init() tea.Cmd {
	return v.loadData()
}

func (v *tasksView) loadData() tea.Cmd {
	app := v.state.App
	query := v.state.SearchQuery()
	return func() tea.Msg {
		tasks, err := app.Tasks.List(context.Background(), query)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (v *tasksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.tasks = msg.tasks
			if v.cursor >= len(v.tasks) {
				v.cursor = max(0, len(v.tasks)-1)
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
			if v.cursor < len(v.tasks)-1 {
				v.cursor++
			}
		case "enter", "a":
			if v.state.Role() == domain.RoleVolunteer && v.cursor < len(v.tasks) {
				return v, v.acceptTask(v.tasks[v.cursor])
			}
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

// acceptTask claims the task for the logged-in volunteer. Claiming a
// task that is no longer open surfaces a warning and changes nothing.
func (v *tasksView) acceptTask(task *domain.VolunteerTask) tea.Cmd {
	if !task.Acceptable() {
		return notify(fmt.Sprintf("Task for %s is already claimed", task.Resident), domain.SeverityWarning)
	}
	app := v.state.App
	volunteer := v.state.Store.UserName()
	taskID := task.ID
	service := task.Service
	resident := task.Resident
	return func() tea.Msg {
		_, err := app.Tasks.Accept(context.Background(), taskID, volunteer)
		if err != nil {
			return notifyMsg{message: "Could not accept task: " + err.Error(), severity: domain.SeverityError}
		}
		return notifyMsg{
			message:  fmt.Sprintf("Task accepted: %s for %s", service, resident),
			severity: domain.SeveritySuccess,
		}
	}
}

func (v *tasksView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var open int
	for _, t := range v.tasks {
		if t.Status == domain.TaskOpen {
			open++
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n  %s %s\n\n",
		formatter.Dim("Available tasks:"), formatter.Bold(fmt.Sprintf("%d", open))))

	if len(v.tasks) == 0 {
		b.WriteString("  " + formatter.Dim("No tasks match.") + "\n")
		return b.String()
	}

	headers := []string{"", "Service", "Resident", "Time", "Urgency", "Status"}
	rows := make([][]string, 0, len(v.tasks))
	for i, t := range v.tasks {
		cursor := " "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸")
		}
		status := formatter.TaskPill(t.Status)
		if t.AssignedTo != "" {
			status += formatter.Dim(" · " + t.AssignedTo)
		}
		rows = append(rows, []string{
			cursor,
			formatter.PadRight(t.Service, 20),
			t.Resident,
			t.Time,
			formatter.UrgencyPill(t.Urgency),
			status,
		})
	}
	b.WriteString(indent(formatter.RenderTable(headers, rows), 2))

	return b.String()
}
