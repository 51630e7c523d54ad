package realtime

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestServerEventDecodeIgnoresUnknownFields(t *testing.T) {
	payload := `{
		"type": "response.audio_transcript.delta",
		"event_id": "ev_1",
		"item_id": "item_1",
		"response_id": "resp_1",
		"delta": "Hello",
		"output_index": 0,
		"content_index": 0
	}`

	var event ServerEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if event.Type != "response.audio_transcript.delta" {
		t.Fatalf("unexpected type %q", event.Type)
	}
	if event.ItemID != "item_1" || event.Delta != "Hello" {
		t.Fatalf("unexpected fields: %+v", event)
	}
}

func TestServerEventDecodeHistorySnapshot(t *testing.T) {
	payload := `{
		"type": "history_updated",
		"items": [
			{
				"id": "item_1",
				"type": "message",
				"role": "user",
				"status": "completed",
				"content": [{"type": "input_audio", "transcript": "hello there"}]
			},
			{
				"id": "call_1",
				"type": "function_call",
				"name": "transfer_to_Sales",
				"call_id": "call_1",
				"arguments": "{}"
			}
		]
	}`

	var event ServerEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if len(event.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(event.Items))
	}
	if event.Items[0].Content[0].Transcript != "hello there" {
		t.Fatalf("unexpected content: %+v", event.Items[0].Content)
	}
	if event.Items[1].Name != "transfer_to_Sales" || event.Items[1].CallID != "call_1" {
		t.Fatalf("unexpected function call item: %+v", event.Items[1])
	}
}

func TestSessionUpdateMarshalsExplicitNullTurnDetection(t *testing.T) {
	event := NewSessionUpdateEvent(SessionConfig{Instructions: "Help the caller."})

	raw, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	// null, not absent: this is what disables server VAD remotely.
	if !strings.Contains(string(raw), `"turn_detection":null`) {
		t.Fatalf("expected explicit null turn_detection, got %s", raw)
	}
}

func TestSessionUpdateMarshalsServerVAD(t *testing.T) {
	config := SessionConfig{TurnDetection: ServerVADTurnDetection()}

	raw, err := json.Marshal(NewSessionUpdateEvent(config))
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded struct {
		Session struct {
			TurnDetection *TurnDetection `json:"turn_detection"`
		} `json:"session"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	td := decoded.Session.TurnDetection
	if td == nil || td.Type != "server_vad" {
		t.Fatalf("expected server_vad, got %+v", td)
	}
	if td.Threshold != 0.9 || td.PrefixPaddingMs != 300 || td.SilenceDurationMs != 500 || !td.CreateResponse {
		t.Fatalf("unexpected VAD parameters: %+v", td)
	}
}

func TestNewUserMessageEvent(t *testing.T) {
	event := NewUserMessageEvent("item_1", "hello")

	if event.Type != "conversation.item.create" {
		t.Fatalf("unexpected type %q", event.Type)
	}
	item := event.Item
	if item == nil || item.ID != "item_1" || item.Type != "message" || item.Role != "user" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if len(item.Content) != 1 || item.Content[0].Type != "input_text" || item.Content[0].Text != "hello" {
		t.Fatalf("unexpected content: %+v", item.Content)
	}
}

func TestNewInputAudioBufferAppendEncodesBase64(t *testing.T) {
	event := NewInputAudioBufferAppendEvent([]byte{0x00, 0x01, 0x02})

	if event.Type != "input_audio_buffer.append" {
		t.Fatalf("unexpected type %q", event.Type)
	}
	if event.Audio != "AAEC" {
		t.Fatalf("unexpected audio payload %q", event.Audio)
	}
}
