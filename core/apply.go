package session

import (
	"github.com/benkoska/voiceline-core/core/events"
	"github.com/benkoska/voiceline-core/core/realtime"
)

// Handle applies one raw transport event to the session. It classifies
// the event, routes it to the delta merger or the history reconciler, and
// notifies the transcript callback when anything visible changed.
//
// Handle is synchronous and bounded-time. The transport calls it from a
// single goroutine; one malformed event must never stall or corrupt the
// rest of the stream, so the whole path is panic-contained and malformed
// input is dropped after logging.
func (s *Session) Handle(raw realtime.ServerEvent) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Warn("Recovered from panic while applying event",
				"type", raw.Type, "panic", recovered)
		}
	}()

	before := s.store.Revision()

	switch event := classify(raw).(type) {
	case events.StreamTextDelta:
		s.applyStreamDelta(event.ItemID, event.Delta)
	case events.StreamTranscriptDelta:
		s.applyStreamDelta(event.ItemID, event.Delta)
	case events.UserSpeechStarted:
		s.applySpeechStarted(event.ItemID)
	case events.UserTranscriptionCompleted:
		s.applyTranscriptionCompleted(event.ItemID, event.Transcript)
	case events.HistoryItemAdded:
		s.reconcileSnapshot(event.Item)
	case events.HistoryItemsUpdated:
		for _, item := range event.Items {
			s.reconcileSnapshot(item)
		}
	case events.ResponseDone:
		// Item finalisation arrives through history snapshots; nothing to
		// merge here.
		logger.Debug("Assistant response done")
	case events.ConnectionStateChanged:
		s.setConnectionState(event.State)
	case events.Unclassified:
		logger.Debug("Dropped unclassified event", "type", event.RawType)
	}

	if s.store.Revision() != before {
		s.notifyTranscript()
	}
}
