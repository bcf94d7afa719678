package cli

import (
	"context"
	"fmt"

	"worklog/internal/cli/formatter"
	"worklog/internal/domain"
	"worklog/internal/stats"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// statsLoadedMsg signals that a stats report has been computed.
type statsLoadedMsg struct {
	mode    domain.ViewMode
	buckets []stats.Bucket
	summary stats.Summary
	err     error
}

// statsView shows hour totals grouped by the selected period.
type statsView struct {
	app     *App
	mode    domain.ViewMode
	buckets []stats.Bucket
	summary stats.Summary
	loading bool
	err     error
}

func newStatsView(app *App) *statsView {
	return &statsView{app: app, mode: domain.ViewDaily, loading: true}
}

func (v *statsView) ID() ViewID    { return ViewStats }
func (v *statsView) Title() string { return "Stats" }

func (v *statsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "cycle period")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *statsView) Init() tea.Cmd {
	return v.loadStats()
}

func (v *statsView) loadStats() tea.Cmd {
	app := v.app
	mode := v.mode
	return func() tea.Msg {
		ctx := context.Background()
		buckets, err := app.Stats.Report(ctx, mode)
		if err != nil {
			return statsLoadedMsg{mode: mode, err: err}
		}
		summary, err := app.Stats.Summary(ctx)
		return statsLoadedMsg{mode: mode, buckets: buckets, summary: summary, err: err}
	}
}

func (v *statsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.mode != v.mode {
			return v, nil // stale load from before a mode switch
		}
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.buckets = msg.buckets
			v.summary = msg.summary
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadStats()

	case tea.KeyMsg:
		switch msg.String() {
		case "m":
			v.mode = v.mode.Next()
			v.loading = true
			return v, v.loadStats()
		case "r":
			v.loading = true
			return v, v.loadStats()
		}
	}
	return v, nil
}

func (v *statsView) View() string {
	header := fmt.Sprintf("%s %s\n\n",
		formatter.Dim("Grouped by:"), formatter.StyleHeader.Render(string(v.mode)))

	if v.loading {
		return header + formatter.Dim("Computing...")
	}
	if v.err != nil {
		return header + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.buckets) == 0 {
		return header + formatter.Dim("No sessions yet.")
	}

	out := header
	out += fmt.Sprintf("%s %s   %s %s\n\n",
		formatter.Dim("All time:"), formatter.Bold(formatter.FormatHours(v.summary.AllTimeHours)+"h"),
		formatter.Dim("This month:"), formatter.Bold(formatter.FormatHours(v.summary.MonthHours)+"h"))

	headers := []string{"PERIOD", "HOURS"}
	rows := make([][]string, 0, len(v.buckets))
	for _, b := range v.buckets {
		rows = append(rows, []string{b.Label, formatter.StyleGreen.Render(formatter.FormatHours(b.TotalHours))})
	}
	out += formatter.RenderTable(headers, rows)
	return out
}
