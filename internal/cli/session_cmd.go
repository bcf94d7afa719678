package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"worklog/internal/cli/formatter"
	"worklog/internal/domain"
	"worklog/internal/repository"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var date, notes string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if date == "" {
				date = time.Now().Format(domain.DateLayout)
			}

			s := &domain.Session{
				Date:  date,
				Hours: hours,
				Notes: notes,
			}
			if err := app.Sessions.Log(ctx, s); err != nil {
				return err
			}

			cmd.Printf("Logged %s hours on %s (#%d)\n",
				formatter.FormatHours(hours), formatter.Dim(displayDate(date)), s.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Session date (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours worked")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work sessions, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListAll(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				cmd.Println("No sessions yet.")
				return nil
			}

			headers := []string{"ID", "DATE", "HOURS", "LOGGED", "NOTES"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				rows = append(rows, []string{
					strconv.FormatInt(s.ID, 10),
					displayDate(s.Date),
					formatter.FormatHours(s.Hours),
					formatter.Dim(formatter.HumanTimestamp(s.CreatedAt)),
					formatter.TruncNote(s.Notes, 40),
				})
			}
			cmd.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var date, notes string
	var hours float64

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a work session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}

			s, err := app.Sessions.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("session %d not found", id)
				}
				return err
			}

			if cmd.Flags().Changed("date") {
				s.Date = date
			}
			if cmd.Flags().Changed("hours") {
				s.Hours = hours
			}
			if cmd.Flags().Changed("notes") {
				s.Notes = notes
			}

			if err := app.Sessions.Update(ctx, s); err != nil {
				return err
			}
			cmd.Printf("Updated session #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "New session date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "New hours worked")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a work session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			if err := app.Sessions.Delete(context.Background(), id); err != nil {
				return err
			}
			cmd.Printf("Removed session #%d\n", id)
			return nil
		},
	}
	return cmd
}
