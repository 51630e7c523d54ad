package session

import (
	"testing"

	"github.com/benkoska/voiceline-core/core/agents"
	"github.com/benkoska/voiceline-core/core/realtime"
)

func transferCall(id, name string) realtime.ConversationItem {
	return realtime.ConversationItem{ID: id, Type: "function_call", Name: name, Arguments: "{}"}
}

func TestHandoffSwitchesActiveAgentExactlyOnce(t *testing.T) {
	switches := 0
	s := newTestSession(t, WithAgentChangedCallback(func(agents.Agent) {
		switches++
	}))

	update := realtime.ServerEvent{Type: "history_updated", Items: []realtime.ConversationItem{
		transferCall("call-1", "transfer_to_Sales"),
	}}
	for i := 0; i < 3; i++ {
		s.Handle(update)
	}

	if got := s.ActiveAgent().Name; got != "Sales" {
		t.Fatalf("expected active agent Sales, got %q", got)
	}
	if switches != 1 {
		t.Fatalf("expected exactly one switch for redelivered call, got %d", switches)
	}
}

func TestHandoffMatchesRosterCaseInsensitively(t *testing.T) {
	s := newTestSession(t)

	s.Handle(realtime.ServerEvent{Type: "history_updated", Items: []realtime.ConversationItem{
		transferCall("call-1", "transfer_to_sales"),
	}})

	if got := s.ActiveAgent().Name; got != "Sales" {
		t.Fatalf("expected case-insensitive roster match, got %q", got)
	}
}

func TestHandoffToUnknownAgentIsIgnored(t *testing.T) {
	s := newTestSession(t)

	s.Handle(realtime.ServerEvent{Type: "history_updated", Items: []realtime.ConversationItem{
		transferCall("call-1", "transfer_to_Billing"),
	}})

	if got := s.ActiveAgent().Name; got != "Greeter" {
		t.Fatalf("expected active agent to stay Greeter, got %q", got)
	}
}

func TestOrdinaryToolCallDoesNotSwitchAgents(t *testing.T) {
	s := newTestSession(t)

	s.Handle(realtime.ServerEvent{Type: "history_updated", Items: []realtime.ConversationItem{
		transferCall("call-1", "lookup_order"),
	}})

	if got := s.ActiveAgent().Name; got != "Greeter" {
		t.Fatalf("expected active agent to stay Greeter, got %q", got)
	}
}

func TestHandoffRecordsAgentBreadcrumb(t *testing.T) {
	s := newTestSession(t)

	s.Handle(realtime.ServerEvent{Type: "history_updated", Items: []realtime.ConversationItem{
		transferCall("call-1", "transfer_to_Sales"),
	}})

	var sawAgentCrumb bool
	for _, item := range s.Transcript() {
		if item.Type == ItemTypeBreadcrumb && item.Title == "Agent: Sales" {
			sawAgentCrumb = true
		}
	}
	if !sawAgentCrumb {
		t.Fatalf("expected an agent breadcrumb after handoff")
	}
}
