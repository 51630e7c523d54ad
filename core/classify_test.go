package session

import (
	"testing"

	"github.com/benkoska/voiceline-core/core/events"
	"github.com/benkoska/voiceline-core/core/realtime"
)

func TestClassifyKnownEventTypes(t *testing.T) {
	cases := []struct {
		name string
		raw  realtime.ServerEvent
		want events.Kind
	}{
		{
			name: "assistant text delta",
			raw:  realtime.ServerEvent{Type: "response.text.delta", ItemID: "i1", Delta: "He"},
			want: events.KindStreamTextDelta,
		},
		{
			name: "assistant audio transcript delta",
			raw:  realtime.ServerEvent{Type: "response.audio_transcript.delta", ItemID: "i1", Delta: "He"},
			want: events.KindStreamTranscriptDelta,
		},
		{
			name: "user transcription delta",
			raw:  realtime.ServerEvent{Type: "conversation.input_audio_transcription.delta", ItemID: "u1", Delta: "or"},
			want: events.KindStreamTranscriptDelta,
		},
		{
			name: "delta under text field",
			raw:  realtime.ServerEvent{Type: "response.text.delta", ItemID: "i1", Text: "He"},
			want: events.KindStreamTextDelta,
		},
		{
			name: "delta keyed by response",
			raw:  realtime.ServerEvent{Type: "response.text.delta", ResponseID: "r1", Delta: "He"},
			want: events.KindStreamTextDelta,
		},
		{
			name: "speech started",
			raw:  realtime.ServerEvent{Type: "input_audio_buffer.speech_started", ItemID: "u1"},
			want: events.KindUserSpeechStarted,
		},
		{
			name: "transcription completed",
			raw:  realtime.ServerEvent{Type: "conversation.item.input_audio_transcription.completed", ItemID: "u1", Transcript: "hello"},
			want: events.KindUserTranscriptionCompleted,
		},
		{
			name: "response done",
			raw:  realtime.ServerEvent{Type: "response.done"},
			want: events.KindResponseDone,
		},
		{
			name: "item created",
			raw:  realtime.ServerEvent{Type: "conversation.item.created", Item: &realtime.ConversationItem{ID: "i1", Type: "message"}},
			want: events.KindHistoryItemAdded,
		},
		{
			name: "history updated",
			raw:  realtime.ServerEvent{Type: "history_updated", Items: []realtime.ConversationItem{{ID: "i1", Type: "message"}}},
			want: events.KindHistoryItemsUpdated,
		},
		{
			name: "connection state",
			raw:  realtime.ServerEvent{Type: "connection.state.changed", State: "connected"},
			want: events.KindConnectionStateChanged,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.raw).Kind(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestClassifyDropsMalformedAndUnknownEvents(t *testing.T) {
	cases := []struct {
		name string
		raw  realtime.ServerEvent
	}{
		{name: "unknown type", raw: realtime.ServerEvent{Type: "response.audio.rate_limit"}},
		{name: "delta without item", raw: realtime.ServerEvent{Type: "response.text.delta", Delta: "He"}},
		{name: "delta without text", raw: realtime.ServerEvent{Type: "response.text.delta", ItemID: "i1"}},
		{name: "speech started without item", raw: realtime.ServerEvent{Type: "input_audio_buffer.speech_started"}},
		{name: "added without snapshot", raw: realtime.ServerEvent{Type: "conversation.item.created"}},
		{name: "updated without snapshots", raw: realtime.ServerEvent{Type: "history_updated"}},
		{name: "bogus connection state", raw: realtime.ServerEvent{Type: "connection.state.changed", State: "warming_up"}},
		{name: "empty type", raw: realtime.ServerEvent{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.raw).Kind(); got != events.KindUnclassified {
				t.Fatalf("expected unclassified, got %q", got)
			}
		})
	}
}

func TestClassifySkipsIdentitylessSnapshotsInBatch(t *testing.T) {
	raw := realtime.ServerEvent{Type: "history_updated", Items: []realtime.ConversationItem{
		{Type: "message"},
		{ID: "i2", Type: "message"},
	}}

	event, ok := classify(raw).(events.HistoryItemsUpdated)
	if !ok {
		t.Fatalf("expected a history items updated event, got %T", classify(raw))
	}
	if len(event.Items) != 1 || event.Items[0].ID != "i2" {
		t.Fatalf("expected only the identified snapshot to survive, got %+v", event.Items)
	}
}
