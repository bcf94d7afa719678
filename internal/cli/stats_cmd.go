package cli

import (
	"context"

	"worklog/internal/cli/formatter"
	"worklog/internal/domain"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show hour totals grouped by period",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseViewMode(view)
			if err != nil {
				return err
			}

			buckets, err := app.Stats.Report(context.Background(), mode)
			if err != nil {
				return err
			}
			if len(buckets) == 0 {
				cmd.Println("No sessions yet.")
				return nil
			}

			headers := []string{"PERIOD", "HOURS"}
			rows := make([][]string, 0, len(buckets))
			for _, b := range buckets {
				rows = append(rows, []string{b.Label, formatter.FormatHours(b.TotalHours)})
			}
			cmd.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", string(domain.ViewDaily), "Grouping period: daily, weekly, monthly or yearly")

	return cmd
}

func newTotalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show all-time and current-month hour totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := app.Stats.Summary(context.Background())
			if err != nil {
				return err
			}
			cmd.Printf("All time:   %s hours\n", formatter.Bold(formatter.FormatHours(sum.AllTimeHours)))
			cmd.Printf("This month: %s hours\n", formatter.Bold(formatter.FormatHours(sum.MonthHours)))
			return nil
		},
	}
	return cmd
}
