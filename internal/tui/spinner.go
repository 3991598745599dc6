package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunWithSpinner executes task while showing an animated spinner with the
// given message. In non-interactive mode the task runs directly and the
// message is printed once, so CI logs stay clean.
func RunWithSpinner(message string, task func() error) error {
	if !IsInteractive() {
		fmt.Fprintln(os.Stderr, message)
		return task()
	}

	model := newSpinnerModel(message, task)
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		// Terminal trouble: fall back to running without decoration.
		return task()
	}
	return final.(spinnerModel).err
}

// spinnerModel runs a background task and animates until it completes.
type spinnerModel struct {
	spinner spinner.Model
	message string
	task    func() error
	done    bool
	err     error
}

type taskDoneMsg struct {
	err error
}

func newSpinnerModel(message string, task func() error) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return spinnerModel{
		spinner: s,
		message: message,
		task:    task,
	}
}

// Init implements tea.Model.
func (m spinnerModel) Init() tea.Cmd {
	run := func() tea.Msg {
		return taskDoneMsg{err: m.task()}
	}
	return tea.Batch(m.spinner.Tick, run)
}

// Update implements tea.Model.
func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.err = context.Canceled
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return ModifiedStyle.Render("✗ "+m.message) + "\n"
		}
		return MatchedStyle.Render("✓ "+m.message) + "\n"
	}
	return m.spinner.View() + " " + MutedStyle.Render(m.message)
}
