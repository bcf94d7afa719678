package cli

import (
	"context"
	"errors"

	"worklog/internal/backup"

	"github.com/spf13/cobra"
)

const defaultBackupName = "worklog_backup.json"

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all sessions to a JSON backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if out == "-" {
				return app.Backup.Export(ctx, cmd.OutOrStdout())
			}
			if err := app.Backup.ExportToFile(ctx, out); err != nil {
				return err
			}
			cmd.Printf("Exported backup to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", defaultBackupName, `Destination file ("-" for stdout)`)

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge sessions from a JSON backup file",
		Long: `Merge sessions from a JSON backup file.

Records whose (date, created_at) pair already exists in the store are
skipped, so importing the same backup twice adds nothing the second time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Backup.ImportFromFile(context.Background(), args[0])
			if err != nil {
				if errors.Is(err, backup.ErrCanceled) {
					cmd.Println("Import canceled.")
					return nil
				}
				return err
			}
			cmd.Printf("Imported %d new sessions (%d duplicates skipped)\n",
				result.Imported, result.Skipped)
			return nil
		},
	}
	return cmd
}
