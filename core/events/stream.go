package events

const (
	// KindStreamTextDelta identifies an assistant text delta.
	KindStreamTextDelta Kind = "stream.text_delta"
	// KindStreamTranscriptDelta identifies an audio-transcript delta.
	KindStreamTranscriptDelta Kind = "stream.transcript_delta"
)

// StreamTextDelta carries one streamed assistant text fragment.
type StreamTextDelta struct {
	Base
	ItemID string
	Delta  string
}

// NewStreamTextDelta creates a text delta event.
func NewStreamTextDelta(itemID, delta string) StreamTextDelta {
	return StreamTextDelta{Base: NewBase(KindStreamTextDelta), ItemID: itemID, Delta: delta}
}

// StreamTranscriptDelta carries one streamed audio-transcript fragment.
//
// Transports are free to emit transcript deltas and text deltas for the
// same item; both merge through the identity-keyed append path.
type StreamTranscriptDelta struct {
	Base
	ItemID string
	Delta  string
}

// NewStreamTranscriptDelta creates a transcript delta event.
func NewStreamTranscriptDelta(itemID, delta string) StreamTranscriptDelta {
	return StreamTranscriptDelta{Base: NewBase(KindStreamTranscriptDelta), ItemID: itemID, Delta: delta}
}
