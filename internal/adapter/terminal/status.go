package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnquangdev/convo-coach/internal/usecase/playback"
)

// StatusLine shows replay progress as a spinner. A program runs for the
// length of one sequence: the first busy state starts it and Idle ends it.
type StatusLine struct {
	mu   sync.Mutex
	out  io.Writer
	prog *tea.Program
	done chan struct{}
}

// NewStatusLine creates a status line on out
func NewStatusLine(out io.Writer) *StatusLine {
	return &StatusLine{out: out}
}

// Publish implements playback.StatusIndicator
func (s *StatusLine) Publish(st playback.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prog == nil {
		if !st.Busy() {
			if st.Phase == playback.PhaseError {
				fmt.Fprintln(s.out, failureLine(st.Message))
			}
			return
		}
		s.start()
	}

	s.prog.Send(stateMsg(st))
	if st.Phase == playback.PhaseIdle {
		<-s.done
		s.prog = nil
	}
}

func (s *StatusLine) start() {
	prog := tea.NewProgram(newStatusModel(),
		tea.WithInput(nil),
		tea.WithOutput(s.out),
		tea.WithoutSignalHandler(),
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = prog.Run()
	}()
	s.prog, s.done = prog, done
}

func failureLine(msg string) string {
	return badStyle.Render("✖ " + msg)
}

type stateMsg playback.State

type statusModel struct {
	spinner  spinner.Model
	state    playback.State
	failure  string
	quitting bool
}

func newStatusModel() statusModel {
	return statusModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(warnStyle)),
	}
}

func (m statusModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		st := playback.State(msg)
		switch st.Phase {
		case playback.PhaseIdle:
			m.quitting = true
			return m, tea.Quit
		case playback.PhaseError:
			m.failure = st.Message
		default:
			m.state = st
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m statusModel) View() string {
	if m.failure != "" {
		if m.quitting {
			return failureLine(m.failure) + "\n"
		}
		return failureLine(m.failure)
	}
	if m.quitting {
		return ""
	}
	switch m.state.Phase {
	case playback.PhasePlaying:
		return m.spinner.View() + goodStyle.Render(fmt.Sprintf("Playing clip %d/%d", m.state.Clip+1, m.state.Total))
	default:
		return m.spinner.View() + warnStyle.Render("Generating replay...")
	}
}
