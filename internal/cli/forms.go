package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"worklog/internal/backup"
	"worklog/internal/cli/formatter"
	"worklog/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// worklogHuhTheme returns a custom huh theme using the existing palette.
func worklogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func successStatus(format string, args ...any) tea.Msg {
	return statusMsg{text: formatter.StyleGreen.Render("✔ ") + fmt.Sprintf(format, args...)}
}

func errorStatus(err error) tea.Msg {
	return statusMsg{text: formatter.StyleRed.Render("✗ ") + err.Error()}
}

// newSessionFormView builds the add/edit form. Passing nil creates a new
// session; otherwise the form pre-fills and updates the existing record.
func newSessionFormView(app *App, existing *domain.Session) View {
	isEdit := existing != nil

	date := time.Now().Format(domain.DateLayout)
	hours := ""
	notes := ""
	if isEdit {
		date = existing.Date
		hours = strconv.FormatFloat(existing.Hours, 'f', -1, 64)
		notes = existing.Notes
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&date).
				Validate(validateDate),
			huh.NewInput().
				Title("Hours").
				Placeholder("1.5").
				Value(&hours).
				Validate(validateHours),
			huh.NewText().
				Title("Notes (optional)").
				Value(&notes),
		),
	).WithTheme(worklogHuhTheme()).WithShowHelp(false)

	title := "Add Session"
	if isEdit {
		title = "Edit Session"
	}

	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			parsed, _ := strconv.ParseFloat(strings.TrimSpace(hours), 64)

			if isEdit {
				updated := *existing
				updated.Date = date
				updated.Hours = parsed
				updated.Notes = notes
				if err := app.Sessions.Update(ctx, &updated); err != nil {
					return errorStatus(err)
				}
				return successStatus("Updated session #%d", updated.ID)
			}

			s := domain.Session{Date: date, Hours: parsed, Notes: notes}
			if err := app.Sessions.Log(ctx, &s); err != nil {
				return errorStatus(err)
			}
			return successStatus("Logged %s hours on %s", formatter.FormatHours(parsed), date)
		}
	}

	return newFormView(title, form, done)
}

// newDeleteConfirmView asks before deleting the selected session.
func newDeleteConfirmView(app *App, s *domain.Session) View {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete the %s session (%sh)?", displayDate(s.Date), formatter.FormatHours(s.Hours))).
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(worklogHuhTheme()).WithShowHelp(false)

	id := s.ID
	done := func() tea.Cmd {
		return func() tea.Msg {
			if !confirmed {
				return statusMsg{text: "Canceled."}
			}
			if err := app.Sessions.Delete(context.Background(), id); err != nil {
				return errorStatus(err)
			}
			return successStatus("Deleted session #%d", id)
		}
	}

	return newFormView("Delete Session", form, done)
}

// newExportFormView collects a destination path and writes a backup there.
func newExportFormView(app *App) View {
	path := defaultBackupName

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Export backup to").
				Value(&path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("enter a file path")
					}
					return nil
				}),
		),
	).WithTheme(worklogHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			if err := app.Backup.ExportToFile(context.Background(), path); err != nil {
				return errorStatus(err)
			}
			return successStatus("Exported backup to %s", path)
		}
	}

	return newFormView("Export Backup", form, done)
}

// newImportFormView collects a backup file path and merges it into the store.
// Leaving the path blank is treated as a canceled selection: nothing happens.
func newImportFormView(app *App) View {
	var path string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Import backup from").
				Description("Sessions already present (same date and creation time) are skipped. Leave blank to cancel.").
				Placeholder(defaultBackupName).
				Value(&path),
		),
	).WithTheme(worklogHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			result, err := app.Backup.ImportFromFile(context.Background(), strings.TrimSpace(path))
			if err != nil {
				if errors.Is(err, backup.ErrCanceled) {
					return statusMsg{text: "Import canceled."}
				}
				return errorStatus(err)
			}
			return successStatus("Imported %d new sessions (%d duplicates skipped)", result.Imported, result.Skipped)
		}
	}

	return newFormView("Import Backup", form, done)
}
