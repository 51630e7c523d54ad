package session

import (
	"github.com/benkoska/voiceline-core/core/agents"
	"github.com/benkoska/voiceline-core/core/events"
)

// SessionOption configures a session at construction time.
type SessionOption func(*Session)

type sessionOptions struct {
	greeting string

	transcriptCallback      func(items []TranscriptItem)
	agentChangedCallback    func(agent agents.Agent)
	connectionStateCallback func(state events.ConnectionState)
}

// WithTransport wires the realtime transport the session drives.
func WithTransport(client Transport) SessionOption {
	return func(s *Session) { s.transport.set(client) }
}

// WithPushToTalk starts the session in push-to-talk mode: server-side
// turn detection stays disabled until the mode is switched off.
func WithPushToTalk(enabled bool) SessionOption {
	return func(s *Session) { s.pushToTalk = enabled }
}

// WithGreeting overrides the hidden simulated user message sent when the
// session connects, which triggers the first assistant turn. An empty
// greeting disables it.
func WithGreeting(text string) SessionOption {
	return func(s *Session) { s.opts.greeting = text }
}

// WithTranscriptCallback observes the full transcript after every
// mutation. The callback receives a copy and may be consumed read-only
// from any goroutine.
func WithTranscriptCallback(callback func(items []TranscriptItem)) SessionOption {
	return func(s *Session) { s.opts.transcriptCallback = callback }
}

// WithAgentChangedCallback observes active-agent switches, whether driven
// by handoffs or explicit selection.
func WithAgentChangedCallback(callback func(agent agents.Agent)) SessionOption {
	return func(s *Session) { s.opts.agentChangedCallback = callback }
}

// WithConnectionStateCallback observes session lifecycle transitions.
func WithConnectionStateCallback(callback func(state events.ConnectionState)) SessionOption {
	return func(s *Session) { s.opts.connectionStateCallback = callback }
}
