package session

import (
	"github.com/benkoska/voiceline-core/core/events"
	"github.com/benkoska/voiceline-core/core/realtime"
)

// classify narrows one raw transport event into the typed event contract.
// It is a pure function of the raw type string and required-field
// presence: anything malformed or unknown becomes Unclassified, never an
// error. Downstream components only ever see validated records.
func classify(raw realtime.ServerEvent) events.Event {
	switch raw.Type {
	case "response.text.delta":
		itemID, delta := deltaFields(raw)
		if itemID == "" || delta == "" {
			return events.NewUnclassified(raw.Type)
		}
		return events.NewStreamTextDelta(itemID, delta)

	case "response.audio_transcript.delta", "conversation.input_audio_transcription.delta":
		itemID, delta := deltaFields(raw)
		if itemID == "" || delta == "" {
			return events.NewUnclassified(raw.Type)
		}
		return events.NewStreamTranscriptDelta(itemID, delta)

	case "input_audio_buffer.speech_started":
		if raw.ItemID == "" {
			return events.NewUnclassified(raw.Type)
		}
		return events.NewUserSpeechStarted(raw.ItemID)

	case "conversation.item.input_audio_transcription.completed":
		if raw.ItemID == "" {
			return events.NewUnclassified(raw.Type)
		}
		return events.NewUserTranscriptionCompleted(raw.ItemID, raw.Transcript)

	case "response.done":
		return events.NewResponseDone()

	case "conversation.item.created", "response.output_item.added", "response.output_item.done":
		if raw.Item == nil || raw.Item.ID == "" {
			return events.NewUnclassified(raw.Type)
		}
		return events.NewHistoryItemAdded(snapshotFromWire(*raw.Item))

	case "history_updated":
		if len(raw.Items) == 0 {
			return events.NewUnclassified(raw.Type)
		}
		snapshots := make([]events.ItemSnapshot, 0, len(raw.Items))
		for _, item := range raw.Items {
			if item.ID == "" {
				continue
			}
			snapshots = append(snapshots, snapshotFromWire(item))
		}
		if len(snapshots) == 0 {
			return events.NewUnclassified(raw.Type)
		}
		return events.NewHistoryItemsUpdated(snapshots)

	case "connection.state.changed":
		switch events.ConnectionState(raw.State) {
		case events.ConnectionConnecting, events.ConnectionConnected, events.ConnectionDisconnected:
			return events.NewConnectionStateChanged(events.ConnectionState(raw.State))
		}
		return events.NewUnclassified(raw.Type)
	}

	return events.NewUnclassified(raw.Type)
}

// deltaFields resolves the item identity and delta text. Some transports
// put the fragment under text rather than delta, and identify assistant
// deltas by response rather than item.
func deltaFields(raw realtime.ServerEvent) (string, string) {
	itemID := raw.ItemID
	if itemID == "" && raw.ResponseID != "" {
		itemID = "assistant-" + raw.ResponseID
	}
	delta := raw.Delta
	if delta == "" {
		delta = raw.Text
	}
	return itemID, delta
}

func snapshotFromWire(item realtime.ConversationItem) events.ItemSnapshot {
	snapshot := events.ItemSnapshot{
		ID:        item.ID,
		Kind:      events.ItemKind(item.Type),
		Role:      item.Role,
		Status:    item.Status,
		Name:      item.Name,
		CallID:    item.CallID,
		Arguments: item.Arguments,
		Output:    item.Output,
	}
	for _, part := range item.Content {
		snapshot.Content = append(snapshot.Content, events.ContentFragment{
			Kind:       events.FragmentKind(part.Type),
			Text:       part.Text,
			Transcript: part.Transcript,
		})
	}
	return snapshot
}
