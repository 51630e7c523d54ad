package main

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	session "github.com/benkoska/voiceline-core/core"
	"github.com/benkoska/voiceline-core/core/agents"
	"github.com/benkoska/voiceline-core/core/events"
)

type transcriptMsg []session.TranscriptItem

type connectionMsg events.ConnectionState

type agentMsg agents.Agent

type connectResultMsg struct{ err error }

type model struct {
	session *session.Session
	roster  agents.Roster

	viewport viewport.Model
	input    textinput.Model

	items   []session.TranscriptItem
	state   events.ConnectionState
	agent   string
	muted   bool
	talking bool
	err     error

	width  int
	height int
	ready  bool
}

func newModel(sess *session.Session, roster agents.Roster) model {
	input := textinput.New()
	input.Placeholder = "Type a message, or hold the line and talk"
	input.Focus()

	return model{
		session: sess,
		roster:  roster,
		input:   input,
		state:   sess.State(),
		agent:   sess.ActiveAgent().Name,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.connect())
}

func (m model) connect() tea.Cmd {
	return func() tea.Msg {
		return connectResultMsg{err: m.session.Connect(context.Background())}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - headerHeight - inputHeight - footerHeight
		if contentHeight < 1 {
			contentHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight
		}
		m.input.Width = msg.Width - 4
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			text := m.input.Value()
			m.input.Reset()
			m.session.SendUserText(text)
			return m, nil

		case "ctrl+p":
			m.session.SetPushToTalk(!m.session.PushToTalk())
			if !m.session.PushToTalk() {
				m.talking = false
			}
			return m, nil

		case "tab":
			if !m.session.PushToTalk() {
				return m, nil
			}
			if m.talking {
				m.session.PushToTalkUp()
			} else {
				m.session.PushToTalkDown()
			}
			m.talking = !m.talking
			return m, nil

		case "ctrl+u":
			m.muted = !m.muted
			m.session.Mute(m.muted)
			return m, nil

		case "ctrl+x":
			m.session.Interrupt()
			return m, nil

		case "ctrl+a":
			if next, ok := m.nextAgent(); ok {
				if err := m.session.SelectAgent(next); err != nil {
					m.err = err
				}
			}
			return m, nil
		}

	case connectResultMsg:
		m.err = msg.err
		return m, nil

	case connectionMsg:
		m.state = events.ConnectionState(msg)
		return m, nil

	case agentMsg:
		m.agent = agents.Agent(msg).Name
		return m, nil

	case transcriptMsg:
		m.items = msg
		m.refreshTranscript()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *model) refreshTranscript() {
	if !m.ready {
		return
	}
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(renderTranscript(m.items, m.viewport.Width))
	if atBottom {
		m.viewport.GotoBottom()
	}
}

// nextAgent returns the roster entry after the currently active one,
// wrapping around.
func (m model) nextAgent() (string, bool) {
	if len(m.roster) < 2 {
		return "", false
	}
	for i, agent := range m.roster {
		if agent.Name == m.agent {
			return m.roster[(i+1)%len(m.roster)].Name, true
		}
	}
	return m.roster[0].Name, true
}
