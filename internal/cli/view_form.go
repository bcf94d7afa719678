package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView wraps a huh form as a View. When the form completes, the view
// pops itself and runs done; an aborted form pops with a cancel notice and
// performs no writes.
type formView struct {
	title string
	form  *huh.Form
	done  func() tea.Cmd
}

func newFormView(title string, form *huh.Form, done func() tea.Cmd) *formView {
	return &formView{title: title, form: form, done: done}
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.title }

func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := v.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		v.form = form
	}

	switch v.form.State {
	case huh.StateCompleted:
		return v, tea.Batch(popView(), v.done())
	case huh.StateAborted:
		return v, tea.Batch(popView(), func() tea.Msg {
			return statusMsg{text: "Canceled."}
		})
	}
	return v, cmd
}

func (v *formView) View() string {
	return v.form.View()
}
