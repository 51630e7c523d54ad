package realtime

import (
	"encoding/base64"

	"github.com/invopop/jsonschema"
)

// ServerEvent is the raw tagged record the transport delivers. Only the
// type field is guaranteed; every other field is populated or not depending
// on the declared type, and consumers must validate presence before use.
// Unknown fields in the incoming payload are ignored.
type ServerEvent struct {
	Type       string             `json:"type"`
	EventID    string             `json:"event_id,omitempty"`
	ItemID     string             `json:"item_id,omitempty"`
	ResponseID string             `json:"response_id,omitempty"`
	Delta      string             `json:"delta,omitempty"`
	Text       string             `json:"text,omitempty"`
	Transcript string             `json:"transcript,omitempty"`
	State      string             `json:"state,omitempty"`
	Item       *ConversationItem  `json:"item,omitempty"`
	Items      []ConversationItem `json:"items,omitempty"`
	Error      *ProtocolError     `json:"error,omitempty"`
}

// ProtocolError is the error payload some server events carry.
type ProtocolError struct {
	Type    string `json:"type,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// ConversationItem is the wire shape of one history item, shared between
// inbound snapshots and outbound item creation.
type ConversationItem struct {
	ID      string        `json:"id,omitempty"`
	Type    string        `json:"type,omitempty"`
	Role    string        `json:"role,omitempty"`
	Status  string        `json:"status,omitempty"`
	Content []ContentPart `json:"content,omitempty"`

	// Function call fields.
	Name      string `json:"name,omitempty"`
	CallID    string `json:"call_id,omitempty"`
	Arguments string `json:"arguments,omitempty"`
	Output    string `json:"output,omitempty"`
}

// ContentPart is one content fragment of a message item.
type ContentPart struct {
	Type       string `json:"type"`
	Text       string `json:"text,omitempty"`
	Transcript string `json:"transcript,omitempty"`
}

// ClientEvent is a raw outbound protocol event.
type ClientEvent struct {
	Type    string            `json:"type"`
	Item    *ConversationItem `json:"item,omitempty"`
	Session *SessionConfig    `json:"session,omitempty"`
	Audio   string            `json:"audio,omitempty"`
}

// SessionConfig is the configuration record pushed through session.update.
// TurnDetection is serialized even when nil: null explicitly disables
// server-side voice activity detection.
type SessionConfig struct {
	Instructions  string           `json:"instructions,omitempty"`
	Voice         string           `json:"voice,omitempty"`
	Tools         []ToolDefinition `json:"tools,omitempty"`
	TurnDetection *TurnDetection   `json:"turn_detection"`
}

// TurnDetection carries server VAD parameters.
type TurnDetection struct {
	Type              string  `json:"type"`
	Threshold         float64 `json:"threshold,omitempty"`
	PrefixPaddingMs   int     `json:"prefix_padding_ms,omitempty"`
	SilenceDurationMs int     `json:"silence_duration_ms,omitempty"`
	CreateResponse    bool    `json:"create_response,omitempty"`
}

// ServerVADTurnDetection returns the default server-side turn detection
// parameters used when push-to-talk is off.
func ServerVADTurnDetection() *TurnDetection {
	return &TurnDetection{
		Type:              "server_vad",
		Threshold:         0.9,
		PrefixPaddingMs:   300,
		SilenceDurationMs: 500,
		CreateResponse:    true,
	}
}

// ToolDefinition is the wire shape of one tool exposed to the session.
type ToolDefinition struct {
	Type        string             `json:"type"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// NewUserMessageEvent creates a conversation.item.create event carrying one
// user text message with the given item identity.
func NewUserMessageEvent(itemID, text string) ClientEvent {
	return ClientEvent{
		Type: "conversation.item.create",
		Item: &ConversationItem{
			ID:      itemID,
			Type:    "message",
			Role:    "user",
			Content: []ContentPart{{Type: "input_text", Text: text}},
		},
	}
}

// NewResponseCreateEvent asks the remote session to start responding.
func NewResponseCreateEvent() ClientEvent {
	return ClientEvent{Type: "response.create"}
}

// NewResponseCancelEvent requests best-effort cancellation of the
// in-flight response.
func NewResponseCancelEvent() ClientEvent {
	return ClientEvent{Type: "response.cancel"}
}

// NewInputAudioBufferClearEvent discards any uncommitted input audio.
func NewInputAudioBufferClearEvent() ClientEvent {
	return ClientEvent{Type: "input_audio_buffer.clear"}
}

// NewInputAudioBufferCommitEvent commits buffered input audio as a user
// turn.
func NewInputAudioBufferCommitEvent() ClientEvent {
	return ClientEvent{Type: "input_audio_buffer.commit"}
}

// NewInputAudioBufferAppendEvent appends one base64-encoded audio frame.
func NewInputAudioBufferAppendEvent(audio []byte) ClientEvent {
	return ClientEvent{Type: "input_audio_buffer.append", Audio: base64.StdEncoding.EncodeToString(audio)}
}

// NewSessionUpdateEvent pushes a configuration update to the session.
func NewSessionUpdateEvent(config SessionConfig) ClientEvent {
	return ClientEvent{Type: "session.update", Session: &config}
}
