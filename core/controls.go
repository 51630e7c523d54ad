package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/benkoska/voiceline-core/core/events"
	"github.com/benkoska/voiceline-core/core/realtime"
)

// SendEvent passes a raw client event through to the transport. Without
// an active session it degrades to a warning: auxiliary signals must
// never crash the primary session.
func (s *Session) SendEvent(event realtime.ClientEvent) {
	if s.State() != events.ConnectionConnected {
		logger.Warn("Dropping outbound event without an active session", "type", event.Type)
		return
	}
	if err := s.transport.SendEvent(event); err != nil {
		logger.Warn("Failed to send event", "type", event.Type, "error", err)
	}
}

// SendUserText interrupts any in-flight assistant output, then submits
// the trimmed text as a user turn and requests a response. No-op when
// disconnected or when the text is blank.
func (s *Session) SendUserText(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if s.State() != events.ConnectionConnected {
		logger.Warn("Dropping user text without an active session")
		return
	}

	s.Interrupt()
	s.SendEvent(realtime.NewUserMessageEvent(uuid.NewString(), text))
	s.SendEvent(realtime.NewResponseCreateEvent())
}

// Interrupt requests best-effort cancellation of in-flight assistant
// output. Merges already applied stay as they are; there is no rollback
// of partial text.
func (s *Session) Interrupt() {
	if s.State() != events.ConnectionConnected {
		return
	}
	if err := s.transport.Interrupt(); err != nil {
		logger.Warn("Failed to interrupt", "error", err)
	}
}

// Mute toggles outbound audio on the transport.
func (s *Session) Mute(muted bool) {
	if s.State() != events.ConnectionConnected {
		return
	}
	if err := s.transport.Mute(muted); err != nil {
		logger.Warn("Failed to toggle mute", "muted", muted, "error", err)
	}
}

// SetPushToTalk switches between push-to-talk and server-side turn
// detection, re-pushing the configuration while connected.
func (s *Session) SetPushToTalk(enabled bool) {
	s.mu.Lock()
	if s.pushToTalk == enabled {
		s.mu.Unlock()
		return
	}
	s.pushToTalk = enabled
	s.mu.Unlock()

	s.pushSessionConfig()
}

// PushToTalk reports whether push-to-talk mode is active.
func (s *Session) PushToTalk() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pushToTalk
}

// PushToTalkDown starts a push-to-talk turn: cancel whatever the
// assistant is saying and clear any stale buffered input audio.
func (s *Session) PushToTalkDown() {
	if s.State() != events.ConnectionConnected {
		return
	}
	s.Interrupt()
	s.SendEvent(realtime.NewInputAudioBufferClearEvent())
}

// PushToTalkUp commits the captured audio as a user turn and requests a
// response.
func (s *Session) PushToTalkUp() {
	if s.State() != events.ConnectionConnected {
		return
	}
	s.SendEvent(realtime.NewInputAudioBufferCommitEvent())
	s.SendEvent(realtime.NewResponseCreateEvent())
}

// SelectAgent explicitly switches the active agent. Unlike handoffs this
// is user-driven; it still only mirrors routing state locally and pushes
// a configuration update.
func (s *Session) SelectAgent(name string) error {
	candidate, ok := s.roster.Find(name)
	if !ok {
		return fmt.Errorf("agent %q not in roster", name)
	}

	s.mu.Lock()
	if strings.EqualFold(candidate.Name, s.activeAgent.Name) {
		s.mu.Unlock()
		return nil
	}
	s.activeAgent = candidate
	connected := s.state == events.ConnectionConnected
	s.mu.Unlock()

	if connected {
		s.recordAgentBreadcrumb(candidate)
		s.pushSessionConfig()
		s.notifyTranscript()
	}
	if s.opts.agentChangedCallback != nil {
		s.opts.agentChangedCallback(candidate)
	}
	return nil
}
