package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/oahconnect/carelink/internal/auth"
	"github.com/oahconnect/carelink/internal/config"
	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/service"
	"github.com/oahconnect/carelink/internal/session"
)

// App holds references to all service interfaces used by the TUI and
// the headless subcommands.
type App struct {
	Requests  service.RequestService
	Donations service.DonationService
	Tasks     service.TaskService
	Overview  service.OverviewService
	Export    service.ExportService

	Gate   *auth.Gate
	Store  *session.Store
	Config *config.Config

	// IsInteractive reports whether stdin is a terminal. The dashboard
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "carelink" command. Running it with
// no subcommand starts the interactive dashboard.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "carelink",
		Short: "Community care coordination dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the dashboard requires an interactive terminal; see 'carelink export' for headless use")
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	root.AddCommand(newExportCmd(app))

	return root
}

// newExportCmd exports requests or donations as CSV without the TUI.
func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:       "export {requests|donations}",
		Short:     "Write a CSV snapshot of requests or donations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"requests", "donations"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			ctx := cmd.Context()
			var rows int
			var err error
			switch args[0] {
			case "requests":
				rows, err = app.Export.ExportRequests(ctx, out, contract.RequestFilter{})
			case "donations":
				rows, err = app.Export.ExportDonations(ctx, out)
			default:
				return fmt.Errorf("unknown export target %q", args[0])
			}
			if err != nil {
				return err
			}
			if outPath != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d rows to %s\n", rows, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}
