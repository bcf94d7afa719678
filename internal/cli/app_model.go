package cli

import (
	"strings"

	"worklog/internal/cli/formatter"

	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI. It manages a view stack;
// the session list is the home view.
type appModel struct {
	app       *App
	viewStack []View
	status    string // transient feedback line below the active view
	width     int
	height    int
	quitting  bool
}

func newAppModel(app *App) appModel {
	return appModel{
		app:       app,
		viewStack: []View{newSessionListView(app)},
	}
}

// RunTUI starts the interactive terminal interface.
func RunTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.forward(msg)

	case pushViewMsg:
		m.status = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		// The exposed view reloads so completed forms show fresh data.
		return m, func() tea.Msg { return refreshViewMsg{} }

	case statusMsg:
		m.status = msg.text
		return m, nil

	case tea.KeyMsg:
		// Forms own the keyboard, including esc for abort.
		if v := m.activeView(); v != nil && v.ID() == ViewForm {
			return m.forward(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if len(m.viewStack) > 1 {
				return m, popView()
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m.forward(msg)
	}

	return m.forward(msg)
}

// forward delivers msg to the active view and keeps the updated view.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.activeView()
	if v == nil {
		return m, nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	v := m.activeView()
	if v == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("worklog"))
	b.WriteString(formatter.Dim(" › " + v.Title()))
	b.WriteString("\n\n")
	b.WriteString(v.View())

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderShortHelp(v))
	return b.String()
}

// renderShortHelp renders the bottom key-hint bar for the active view.
func renderShortHelp(v View) string {
	parts := make([]string, 0, 8)
	for _, binding := range v.ShortHelp() {
		h := binding.Help()
		parts = append(parts, formatter.StyleFg.Render(h.Key)+formatter.Dim(" "+h.Desc))
	}
	parts = append(parts, formatter.StyleFg.Render("q")+formatter.Dim(" quit"))
	return formatter.Dim(strings.Join(parts, formatter.Dim("  ·  ")))
}
