package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	session "github.com/benkoska/voiceline-core/core"
	"github.com/benkoska/voiceline-core/core/events"
)

const (
	headerHeight = 2
	inputHeight  = 3
	footerHeight = 1
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	userStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	assistantStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	connectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	connectingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m model) View() string {
	if !m.ready {
		return "Connecting..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		inputBoxStyle.Width(m.width-2).Render(m.input.View()),
		m.renderFooter(),
	)
}

func (m model) renderHeader() string {
	title := titleStyle.Render("voiceline")

	var state string
	switch m.state {
	case events.ConnectionConnected:
		state = connectedStyle.Render("connected")
	case events.ConnectionConnecting:
		state = connectingStyle.Render("connecting")
	default:
		state = mutedStyle.Render("disconnected")
	}

	agent := mutedStyle.Render("agent: ") + m.agent
	line := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", state, "  ", agent)
	if m.err != nil {
		line = lipgloss.JoinHorizontal(lipgloss.Center, line, "  ", errorStyle.Render(m.err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, line, mutedStyle.Render(strings.Repeat("─", max(0, m.width))))
}

func (m model) renderFooter() string {
	var flags []string
	if m.session.PushToTalk() {
		if m.talking {
			flags = append(flags, "[TALKING]")
		} else {
			flags = append(flags, "[PTT]")
		}
	}
	if m.muted {
		flags = append(flags, "[MUTED]")
	}

	help := "enter: send | tab: talk | ctrl+p: ptt | ctrl+u: mute | ctrl+x: interrupt | ctrl+a: agent | esc: quit"
	if len(flags) > 0 {
		help = strings.Join(flags, " ") + " | " + help
	}
	return mutedStyle.Render(help)
}

func renderTranscript(items []session.TranscriptItem, width int) string {
	var sb strings.Builder

	for _, item := range items {
		if item.Hidden {
			continue
		}

		switch item.Type {
		case session.ItemTypeBreadcrumb:
			sb.WriteString(mutedStyle.Render("• " + item.Title))
			sb.WriteString("\n")

		case session.ItemTypeMessage:
			label := assistantStyle.Render(string(item.Role))
			if item.Role == session.RoleUser {
				label = userStyle.Render("you")
			}
			sb.WriteString(label)
			sb.WriteString("\n")

			text := wordwrap.String(item.Text, max(1, width-2))
			if item.Status == session.StatusInProgress {
				sb.WriteString(pendingStyle.Render(text))
			} else {
				sb.WriteString(text)
			}
			sb.WriteString("\n\n")
		}
	}

	if sb.Len() == 0 {
		return mutedStyle.Render("No conversation yet.")
	}
	return sb.String()
}
