// Package session implements the realtime conversation reconciliation
// engine: it consumes the partially-ordered stream of protocol events from
// a bidirectional voice/text session and maintains a single consistent
// transcript plus the active-agent routing state, staying idempotent under
// duplicated or replayed events.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.opentelemetry.io/otel/codes"

	"github.com/benkoska/voiceline-core/core/agents"
	"github.com/benkoska/voiceline-core/core/events"
	"github.com/benkoska/voiceline-core/core/realtime"
)

// defaultGreeting is the hidden simulated user message that kicks off the
// first assistant turn after connecting.
const defaultGreeting = "hi"

// Session owns the connection lifecycle and applies every transport event
// against the transcript store. Events are applied strictly sequentially;
// the transport delivers them from a single goroutine.
type Session struct {
	store  *transcriptStore
	ledger *callLedger
	roster agents.Roster

	// mu guards connection state, the active-agent pointer and the
	// push-to-talk flag.
	mu          sync.Mutex
	state       events.ConnectionState
	activeAgent agents.Agent
	pushToTalk  bool

	transport transport
	opts      sessionOptions
}

// NewSession creates a session over the given roster. The roster's first
// agent starts active.
func NewSession(roster agents.Roster, opts ...SessionOption) (*Session, error) {
	root, ok := roster.Default()
	if !ok {
		return nil, fmt.Errorf("roster must contain at least one agent")
	}

	s := &Session{
		store:       newTranscriptStore(),
		ledger:      newCallLedger(),
		roster:      roster,
		state:       events.ConnectionDisconnected,
		activeAgent: root,
		opts:        sessionOptions{greeting: defaultGreeting},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// State returns the current connection lifecycle state.
func (s *Session) State() events.ConnectionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// ActiveAgent returns the agent currently responding.
func (s *Session) ActiveAgent() agents.Agent {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeAgent
}

// Transcript returns a copy of the transcript in insertion order.
// Renderers are expected to skip hidden items.
func (s *Session) Transcript() []TranscriptItem {
	return s.store.Items()
}

// Connect dials the transport and subscribes the session to its event
// stream. It is a no-op unless the session is disconnected. Connection
// errors surface to the caller; the session is left disconnected.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.state != events.ConnectionDisconnected {
		s.mu.Unlock()
		return nil
	}
	s.state = events.ConnectionConnecting
	s.mu.Unlock()
	s.notifyConnectionState(events.ConnectionConnecting)

	ctx, span := tracer.Start(ctx, "session connect")
	defer span.End()

	err := s.transport.Connect(ctx,
		realtime.WithServerEventCallback(s.Handle),
		realtime.WithConnectionStateCallback(s.handleTransportState),
	)
	if err != nil {
		err = fmt.Errorf("failed to connect session: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.setConnectionState(events.ConnectionDisconnected)
		return err
	}
	return nil
}

// Disconnect tears the transport down and marks the session disconnected.
func (s *Session) Disconnect() {
	if err := s.transport.Close(); err != nil {
		logger.Warn("Failed to close transport", "error", err)
	}
	s.setConnectionState(events.ConnectionDisconnected)
}

func (s *Session) handleTransportState(state string) {
	switch events.ConnectionState(state) {
	case events.ConnectionConnecting, events.ConnectionConnected, events.ConnectionDisconnected:
		s.setConnectionState(events.ConnectionState(state))
	default:
		logger.Debug("Ignoring unknown transport state", "state", state)
	}
}

// setConnectionState transitions the lifecycle state machine. Entering
// the connected state pushes the current configuration, records the
// active-agent breadcrumb and triggers the greeting turn.
func (s *Session) setConnectionState(state events.ConnectionState) {
	s.mu.Lock()
	if s.state == state {
		s.mu.Unlock()
		return
	}
	s.state = state
	agent := s.activeAgent
	s.mu.Unlock()

	s.notifyConnectionState(state)

	if state == events.ConnectionConnected {
		s.recordAgentBreadcrumb(agent)
		s.pushSessionConfig()
		if s.opts.greeting != "" {
			s.sendSimulatedUserMessage(s.opts.greeting)
		}
		s.notifyTranscript()
	}
}

// pushSessionConfig reflects local routing state back to the transport:
// the active agent's instructions and tools plus the turn-detection
// parameters derived from push-to-talk mode.
func (s *Session) pushSessionConfig() {
	s.mu.Lock()
	if s.state != events.ConnectionConnected {
		s.mu.Unlock()
		return
	}
	agent := s.activeAgent
	pushToTalk := s.pushToTalk
	s.mu.Unlock()

	tools := s.roster.SessionTools(agent)
	var toolDefs []realtime.ToolDefinition
	if err := copier.Copy(&toolDefs, tools); err != nil {
		logger.Warn("Failed to convert tool definitions", "error", err)
	}

	config := realtime.SessionConfig{
		Instructions: agent.Instructions,
		Voice:        agent.Voice,
		Tools:        toolDefs,
	}
	if !pushToTalk {
		config.TurnDetection = realtime.ServerVADTurnDetection()
	}

	if err := s.transport.SendEvent(realtime.NewSessionUpdateEvent(config)); err != nil {
		logger.Warn("Failed to push session configuration", "error", err)
	}
}

// sendSimulatedUserMessage records a hidden user message locally and
// replays it through the transport to trigger an assistant response.
func (s *Session) sendSimulatedUserMessage(text string) {
	itemID := uuid.NewString()
	s.store.EnsureMessage(itemID, RoleUser, text, true)
	s.store.SetStatus(itemID, StatusDone)

	if err := s.transport.SendEvent(realtime.NewUserMessageEvent(itemID, text)); err != nil {
		logger.Warn("Failed to send simulated user message", "error", err)
		return
	}
	if err := s.transport.SendEvent(realtime.NewResponseCreateEvent()); err != nil {
		logger.Warn("Failed to trigger response", "error", err)
	}
}

func (s *Session) notifyTranscript() {
	if s.opts.transcriptCallback != nil {
		s.opts.transcriptCallback(s.store.Items())
	}
}

func (s *Session) notifyConnectionState(state events.ConnectionState) {
	if s.opts.connectionStateCallback != nil {
		s.opts.connectionStateCallback(state)
	}
}
