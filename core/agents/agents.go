// Package agents defines the fixed roster of agent personas a session can
// route between, and the tool definitions each persona exposes.
package agents

import "strings"

// Agent is one persona in the roster. The roster is loaded at session
// start and never changes for the session's lifetime; only the pointer to
// the active agent moves.
type Agent struct {
	Name              string
	PublicDescription string
	Instructions      string
	Voice             string
	Tools             []Tool

	// Handoffs names the roster agents this one may transfer the
	// conversation to. Each reachable target contributes a
	// transfer_to_<name> tool to this agent's session configuration.
	Handoffs []string
}

// Roster is the ordered set of agents for one scenario. The first entry is
// the default root agent.
type Roster []Agent

// Find returns the agent whose name matches, case-insensitively.
func (r Roster) Find(name string) (Agent, bool) {
	for _, agent := range r {
		if strings.EqualFold(agent.Name, name) {
			return agent, true
		}
	}
	return Agent{}, false
}

// Default returns the root agent of the roster.
func (r Roster) Default() (Agent, bool) {
	if len(r) == 0 {
		return Agent{}, false
	}
	return r[0], true
}

// SessionTools returns the tool definitions to expose while the given
// agent is active: its own tools plus one handoff tool per reachable
// roster target. Handoff names that miss the roster are skipped.
func (r Roster) SessionTools(agent Agent) []Tool {
	tools := make([]Tool, 0, len(agent.Tools)+len(agent.Handoffs))
	tools = append(tools, agent.Tools...)
	for _, name := range agent.Handoffs {
		target, ok := r.Find(name)
		if !ok {
			continue
		}
		tools = append(tools, newHandoffTool(target))
	}
	return tools
}
