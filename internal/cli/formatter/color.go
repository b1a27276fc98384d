package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/oahconnect/carelink/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UrgencyColor returns the style for an urgency level.
func UrgencyColor(u domain.Urgency) lipgloss.Style {
	switch u {
	case domain.UrgencyUrgent:
		return StyleRed
	case domain.UrgencyHigh:
		return StyleYellow
	case domain.UrgencyMedium:
		return StyleBlue
	case domain.UrgencyLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// UrgencyPill renders a colored urgency marker such as "● Urgent".
func UrgencyPill(u domain.Urgency) string {
	return UrgencyColor(u).Render("● " + string(u))
}

// StatusPill renders a request status with its lifecycle color.
func StatusPill(s domain.RequestStatus) string {
	switch s {
	case domain.RequestPending:
		return StyleYellow.Render(string(s))
	case domain.RequestInProgress:
		return StyleBlue.Render(string(s))
	case domain.RequestCompleted:
		return StyleGreen.Render(string(s))
	case domain.RequestCancelled:
		return StyleDim.Render(string(s))
	default:
		return StyleFg.Render(string(s))
	}
}

// TaskPill renders a volunteer task status.
func TaskPill(s domain.TaskStatus) string {
	switch s {
	case domain.TaskOpen:
		return StyleGreen.Render(string(s))
	case domain.TaskAssigned:
		return StyleBlue.Render(string(s))
	case domain.TaskInProgress:
		return StyleYellow.Render(string(s))
	default:
		return StyleFg.Render(string(s))
	}
}

// SeverityIcon returns the marker shown before a notification.
func SeverityIcon(s domain.Severity) string {
	switch s {
	case domain.SeveritySuccess:
		return StyleGreen.Render("✓")
	case domain.SeverityWarning:
		return StyleYellow.Render("!")
	case domain.SeverityError:
		return StyleRed.Render("✗")
	default:
		return StyleBlue.Render("i")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
