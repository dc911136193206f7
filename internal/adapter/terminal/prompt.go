package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnquangdev/convo-coach/internal/adapter/dto/report"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
)

// ErrAborted is returned when the user cancels a prompt with ctrl+c
var ErrAborted = errors.New("prompt aborted")

const listWidth = 60

// Prompter asks the user questions through interactive terminal programs
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter creates a prompter
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

func (p *Prompter) run(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
}

// PromptIdentities asks for a name per speaker and for the main user. An
// empty answer keeps the speaker ID; the main user defaults to the first.
func (p *Prompter) PromptIdentities(speakers []entities.Speaker, samples map[entities.Speaker]string) (map[entities.Speaker]string, entities.Speaker, error) {
	if len(speakers) == 0 {
		return map[entities.Speaker]string{}, "", nil
	}

	final, err := p.run(newIdentityModel(speakers, samples))
	if err != nil {
		return nil, "", err
	}
	m := final.(identityModel)
	if m.aborted {
		return nil, "", ErrAborted
	}
	return m.names, m.selected, nil
}

// PromptAction lets the user pick a replayable action. It returns the
// action's index; ok is false when the user quits or nothing is replayable.
func (p *Prompter) PromptAction(actions []report.ActionResponse) (index int, ok bool, err error) {
	m := newActionModel(actions)
	if len(m.list.Items()) == 0 {
		return 0, false, nil
	}

	final, err := p.run(m)
	if err != nil {
		return 0, false, err
	}
	am := final.(actionModel)
	if am.aborted || am.chosen < 0 {
		return 0, false, nil
	}
	return am.chosen, true, nil
}

// choice is one row of a picker list
type choice struct {
	title string
	note  string
	value int
}

func (c choice) FilterValue() string { return c.title }

type choiceDelegate struct{}

func (d choiceDelegate) Height() int                             { return 1 }
func (d choiceDelegate) Spacing() int                            { return 0 }
func (d choiceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d choiceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	c, ok := item.(choice)
	if !ok {
		return
	}
	line := c.title
	if c.note != "" {
		line += " " + dimStyle.Render(c.note)
	}
	if index == m.Index() {
		fmt.Fprint(w, actionStyle.Render("> ")+valueStyle.Render(line))
		return
	}
	fmt.Fprint(w, "  "+line)
}

func newPicker(title string, items []list.Item) list.Model {
	l := list.New(items, choiceDelegate{}, listWidth, len(items)+8)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// identityModel first collects a name for each speaker, then asks which
// speaker is the user.
type identityModel struct {
	speakers []entities.Speaker
	samples  map[entities.Speaker]string
	names    map[entities.Speaker]string

	current int
	input   textinput.Model

	picking  bool
	list     list.Model
	selected entities.Speaker

	aborted bool
	done    bool
}

func newIdentityModel(speakers []entities.Speaker, samples map[entities.Speaker]string) identityModel {
	m := identityModel{
		speakers: speakers,
		samples:  samples,
		names:    make(map[entities.Speaker]string, len(speakers)),
	}
	m.input = newNameInput(speakers[0])
	return m
}

func newNameInput(s entities.Speaker) textinput.Model {
	in := textinput.New()
	in.Placeholder = string(s)
	in.Prompt = "› "
	in.CharLimit = 64
	in.Focus()
	return in
}

func (m identityModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m identityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		m.aborted = true
		return m, tea.Quit
	}
	if m.picking {
		return m.updatePick(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		s := m.speakers[m.current]
		m.names[s] = strings.TrimSpace(m.input.Value())
		m.current++
		if m.current < len(m.speakers) {
			m.input = newNameInput(m.speakers[m.current])
			return m, textinput.Blink
		}
		m.picking = true
		m.list = newPicker("Which one is you?", m.speakerItems())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m identityModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			m.selected = m.speakers[0]
			if c, ok := m.list.SelectedItem().(choice); ok {
				m.selected = m.speakers[c.value]
			}
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m identityModel) speakerItems() []list.Item {
	items := make([]list.Item, len(m.speakers))
	for i, s := range m.speakers {
		c := choice{title: string(s), value: i}
		if n := m.names[s]; n != "" {
			c.title = n
			c.note = "(" + string(s) + ")"
		}
		items[i] = c
	}
	return items
}

func (m identityModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	if m.picking {
		return "\n" + m.list.View()
	}

	s := m.speakers[m.current]
	var b strings.Builder
	b.WriteString(titleStyle.Render("Who is who?"))
	b.WriteString("\n\n")
	if sample := m.samples[s]; sample != "" {
		b.WriteString(dimStyle.Render("sample: " + sample))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Who is %s?\n", s)
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter to confirm, empty keeps the ID"))
	b.WriteString("\n")
	return b.String()
}

// actionModel picks one replayable action
type actionModel struct {
	list    list.Model
	chosen  int
	aborted bool
}

func newActionModel(actions []report.ActionResponse) actionModel {
	var items []list.Item
	for _, a := range actions {
		if !a.Replayable {
			continue
		}
		c := choice{title: fmt.Sprintf("%d) %s", a.Index+1, a.DisplayText), value: a.Index}
		if a.ReplayText != "" {
			c.note = fmt.Sprintf("%q", a.ReplayText)
		}
		items = append(items, c)
	}
	return actionModel{list: newPicker("Replay which action?", items), chosen: -1}
}

func (m actionModel) Init() tea.Cmd {
	return nil
}

func (m actionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if c, ok := m.list.SelectedItem().(choice); ok {
				m.chosen = c.value
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m actionModel) View() string {
	if m.aborted || m.chosen >= 0 {
		return ""
	}
	return "\n" + m.list.View() + "\n" + dimStyle.Render("enter to replay, q to quit")
}
