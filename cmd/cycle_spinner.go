package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bnema/paws-quests-cli/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type cycleWaitDoneMsg struct {
	err error
}

type cycleWaitSpinnerModel struct {
	spinner  spinner.Model
	deadline time.Time
	now      func() time.Time
	wait     tea.Cmd
	err      error
	done     bool
}

func newCycleWaitSpinnerModel(deadline time.Time, now func() time.Time, wait tea.Cmd) cycleWaitSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return cycleWaitSpinnerModel{
		spinner:  s,
		deadline: deadline,
		now:      now,
		wait:     wait,
	}
}

func (m cycleWaitSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m cycleWaitSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case cycleWaitDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m cycleWaitSpinnerModel) View() string {
	if m.done {
		return ""
	}

	remaining := m.deadline.Sub(m.now()).Round(time.Second)
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%s Next cycle in %s", m.spinner.View(), remaining)
}

func runCycleWaitSpinner(ctx context.Context, output io.Writer, d time.Duration) error {
	clock := ports.SystemClock{}
	waitCmd := func() tea.Msg {
		return cycleWaitDoneMsg{err: clock.Sleep(ctx, d)}
	}

	p := tea.NewProgram(
		newCycleWaitSpinnerModel(clock.Now().Add(d), clock.Now, waitCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return err
	}

	result, ok := finalModel.(cycleWaitSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
