package cli

import (
	"worklog/internal/service"

	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands and
// TUI views.
type App struct {
	Sessions service.SessionService
	Stats    service.StatsService
	Backup   service.BackupService

	// IsInteractive reports whether stdin is attached to a terminal.
	// When true and no subcommand was given, the TUI is launched.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "worklog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "worklog",
		Short:         "Personal work-hours logger",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newStatsCmd(app),
		newTotalCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
