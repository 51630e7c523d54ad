package session

import (
	"strings"

	"github.com/benkoska/voiceline-core/core/agents"
)

// The handoff router mirrors protocol-level agent transfers into local
// routing state. The authoritative switch already happened on the remote
// session by the time the function call surfaces here, so the router only
// moves the active-agent pointer and re-pushes configuration; it never
// issues a handoff of its own.

// routeHandoff inspects a function-call name for the transfer_to_<agent>
// convention and switches the active agent when the target is a known
// roster entry other than the current one.
func (s *Session) routeHandoff(toolName string) {
	key, ok := agents.HandoffTarget(toolName)
	if !ok {
		return
	}

	candidate, ok := s.roster.Find(key)
	if !ok {
		// Unknown target: treated as an unrecognized tool call, not an
		// error.
		logger.Debug("Handoff target not in roster", "target", key)
		return
	}

	s.mu.Lock()
	if strings.EqualFold(candidate.Name, s.activeAgent.Name) {
		s.mu.Unlock()
		return
	}
	s.activeAgent = candidate
	s.mu.Unlock()

	logger.Info("Active agent switched by handoff", "agent", candidate.Name)
	s.recordAgentBreadcrumb(candidate)
	s.pushSessionConfig()
	if s.opts.agentChangedCallback != nil {
		s.opts.agentChangedCallback(candidate)
	}
}

func (s *Session) recordAgentBreadcrumb(agent agents.Agent) {
	s.store.AddBreadcrumb("Agent: "+agent.Name, map[string]any{
		"name":              agent.Name,
		"publicDescription": agent.PublicDescription,
	})
}
