package events

const (
	// KindUserSpeechStarted identifies start of user voice activity.
	KindUserSpeechStarted Kind = "user_input.speech_started"
	// KindUserTranscriptionCompleted identifies a terminal user transcript.
	KindUserTranscriptionCompleted Kind = "user_input.transcription_completed"
)

// UserSpeechStarted marks the start of a new user speech segment.
type UserSpeechStarted struct {
	Base
	ItemID string
}

// NewUserSpeechStarted creates a speech started event.
func NewUserSpeechStarted(itemID string) UserSpeechStarted {
	return UserSpeechStarted{Base: NewBase(KindUserSpeechStarted), ItemID: itemID}
}

// UserTranscriptionCompleted carries the final transcript for a user
// utterance. Unlike deltas, the transcript replaces any accumulated text.
type UserTranscriptionCompleted struct {
	Base
	ItemID     string
	Transcript string
}

// NewUserTranscriptionCompleted creates a transcription completed event.
func NewUserTranscriptionCompleted(itemID, transcript string) UserTranscriptionCompleted {
	return UserTranscriptionCompleted{Base: NewBase(KindUserTranscriptionCompleted), ItemID: itemID, Transcript: transcript}
}
