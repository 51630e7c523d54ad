package session

import "github.com/benkoska/voiceline-core/core/events"

// The history reconciler applies authoritative item snapshots against the
// transcript store, resolving them against any placeholders the delta
// merger created. At update time a snapshot always wins over accumulated
// deltas; at creation time whichever path observes the identity first
// owns it.

// reconcileSnapshot applies one authoritative item snapshot.
func (s *Session) reconcileSnapshot(item events.ItemSnapshot) {
	switch item.Kind {
	case events.ItemKindFunctionCall:
		s.reconcileFunctionCall(item)
	case events.ItemKindMessage:
		s.reconcileMessage(item)
	default:
		logger.Debug("Ignoring history snapshot of unknown kind",
			"kind", string(item.Kind), "itemId", item.ID)
	}
}

func (s *Session) reconcileMessage(item events.ItemSnapshot) {
	text := item.DisplayText()
	if text == "" {
		// A premature snapshot with no renderable content must not blank
		// an in-progress placeholder.
		return
	}

	role := RoleAssistant
	if r := Role(item.Role); r == RoleUser || r == RoleSystem {
		role = r
	}

	if created := s.store.EnsureMessage(item.ID, role, text, false); !created {
		s.store.ReplaceText(item.ID, text)
	}

	if item.HasStatus() {
		if item.Completed() {
			s.store.SetStatus(item.ID, StatusDone)
		} else {
			s.store.SetStatus(item.ID, StatusInProgress)
		}
	}
}

// reconcileFunctionCall surfaces a tool call as a breadcrumb exactly once
// and lets the handoff router inspect it. Later snapshots of the same
// call (carrying output once it is known) are swallowed by the ledger.
func (s *Session) reconcileFunctionCall(item events.ItemSnapshot) {
	if !s.ledger.recordIfNew(item.ID) {
		return
	}

	data := map[string]any{"arguments": item.Arguments}
	if item.Output != "" {
		data["output"] = item.Output
	}
	s.store.AddBreadcrumb("Tool call: "+item.Name, data)

	s.routeHandoff(item.Name)
}
