package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
)

type model struct {
	cfg        appConfig
	svc        *replService
	viewport   viewport.Model
	input      textinput.Model
	ready      bool
	width      int
	height     int
	transcript []string
	tail       string
	pending    bool
	status     string
}

func newModel(cfg appConfig) model {
	vp := viewport.New(80, 20)
	ti := textinput.New()
	ti.Prompt = cfg.prompt
	ti.CharLimit = 256
	ti.Focus()
	return model{
		cfg:      cfg,
		svc:      startService(cfg),
		viewport: vp,
		input:    ti,
		status:   "ready",
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitEvent(m.svc.events))
}

func waitEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg, ok := <-events:
			if !ok {
				return sessionClosedMsg{}
			}
			return msg
		case <-time.After(20 * time.Millisecond):
			return pollMsg{}
		}
	}
}

func submitLine(svc *replService, line string) tea.Cmd {
	return func() tea.Msg {
		svc.lines <- line
		return nil
	}
}

func answerInput(svc *replService, value string) tea.Cmd {
	return func() tea.Msg {
		svc.inputs <- value
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			value := m.input.Value()
			m.input.SetValue("")
			if m.pending {
				m.pending = false
				m.input.Prompt = m.cfg.prompt
				m.appendLine("? " + value)
				m.refresh()
				return m, tea.Batch(answerInput(m.svc, value), waitEvent(m.svc.events))
			}
			m.appendLine(m.cfg.prompt + value)
			m.refresh()
			return m, tea.Batch(submitLine(m.svc, value), waitEvent(m.svc.events))
		}

	case sessionOutputMsg:
		if msg.out.NewLine {
			m.appendLine(m.tail + msg.out.Text)
			m.tail = ""
		} else {
			m.tail += msg.out.Text
		}
		m.refresh()
		return m, waitEvent(m.svc.events)

	case sessionPromptMsg:
		m.pending = true
		m.input.Prompt = "? "
		m.status = fmt.Sprintf("INPUT %c", msg.req.Var)
		return m, waitEvent(m.svc.events)

	case lineDoneMsg:
		if msg.err != nil {
			m.appendLine(errStyle.Render("ERROR: " + msg.err.Error()))
			m.status = "error"
		} else {
			m.status = "ready"
		}
		m.refresh()
		return m, waitEvent(m.svc.events)

	case sessionClosedMsg:
		return m, tea.Quit

	case pollMsg:
		return m, waitEvent(m.svc.events)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *model) appendLine(line string) {
	m.transcript = append(m.transcript, line)
}

func (m *model) refresh() {
	content := strings.Join(m.transcript, "\n")
	if m.tail != "" {
		content += "\n" + m.tail
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if !m.ready {
		return "starting..."
	}
	status := m.status
	if m.cfg.noColor {
		return m.viewport.View() + "\n" + m.input.View() + "\n" + status
	}
	return m.viewport.View() + "\n" + m.input.View() + "\n" + statusStyle.Render(status)
}
