package cli

import (
	"context"
	"fmt"
	"time"

	"worklog/internal/cli/formatter"
	"worklog/internal/domain"
	"worklog/internal/stats"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// sessionListLoadedMsg signals that the session list has been loaded.
type sessionListLoadedMsg struct {
	sessions []*domain.Session
	err      error
}

// sessionListView is the home view: all sessions, most recent first, with
// add/edit/delete and entry points to stats and backup.
type sessionListView struct {
	app      *App
	sessions []*domain.Session
	cursor   int
	loading  bool
	err      error
}

func newSessionListView(app *App) *sessionListView {
	return &sessionListView{app: app, loading: true}
}

func (v *sessionListView) ID() ViewID    { return ViewSessionList }
func (v *sessionListView) Title() string { return "Sessions" }

func (v *sessionListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "export")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *sessionListView) Init() tea.Cmd {
	return v.loadSessions()
}

func (v *sessionListView) loadSessions() tea.Cmd {
	app := v.app
	return func() tea.Msg {
		sessions, err := app.Sessions.ListAll(context.Background())
		return sessionListLoadedMsg{sessions: sessions, err: err}
	}
}

func (v *sessionListView) selected() *domain.Session {
	if v.cursor < 0 || v.cursor >= len(v.sessions) {
		return nil
	}
	return v.sessions[v.cursor]
}

func (v *sessionListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionListLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.sessions = msg.sessions
			if v.cursor >= len(v.sessions) {
				v.cursor = len(v.sessions) - 1
			}
			if v.cursor < 0 {
				v.cursor = 0
			}
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadSessions()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.sessions)-1 {
				v.cursor++
			}
		case "a":
			return v, pushView(newSessionFormView(v.app, nil))
		case "enter", "e":
			if s := v.selected(); s != nil {
				return v, pushView(newSessionFormView(v.app, s))
			}
		case "x":
			if s := v.selected(); s != nil {
				return v, pushView(newDeleteConfirmView(v.app, s))
			}
		case "s":
			return v, pushView(newStatsView(v.app))
		case "o":
			return v, pushView(newExportFormView(v.app))
		case "i":
			return v, pushView(newImportFormView(v.app))
		case "r":
			v.loading = true
			return v, v.loadSessions()
		}
	}
	return v, nil
}

func (v *sessionListView) View() string {
	if v.loading {
		return formatter.Dim("Loading sessions...")
	}
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}
	if len(v.sessions) == 0 {
		return formatter.Dim("No sessions yet. Press ") +
			formatter.StyleFg.Render("a") + formatter.Dim(" to add one.")
	}

	sum := stats.Summarize(v.sessions, time.Now())
	out := fmt.Sprintf("%s %s   %s %s\n\n",
		formatter.Dim("All time:"), formatter.Bold(formatter.FormatHours(sum.AllTimeHours)+"h"),
		formatter.Dim("This month:"), formatter.Bold(formatter.FormatHours(sum.MonthHours)+"h"))

	for i, s := range v.sessions {
		marker := "  "
		dateStyle := formatter.StyleFg
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
			dateStyle = formatter.StyleBold
		}
		line := fmt.Sprintf("%s%s  %s",
			marker,
			dateStyle.Render(displayDate(s.Date)),
			formatter.StyleGreen.Render(formatter.FormatHours(s.Hours)+"h"))
		if s.Notes != "" {
			line += "  " + formatter.Dim(formatter.TruncNote(s.Notes, 48))
		}
		out += line + "\n"
	}
	return out
}
