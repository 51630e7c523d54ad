package session

import "strings"

// The delta merger applies streaming fragments to the transcript store,
// creating placeholder items on first sight of an identity. Placeholders
// exist so the renderer has something to show before authoritative
// snapshots arrive; snapshots reconcile over them later.

// transcribingPlaceholder is the sentinel shown for a user item between
// speech start and transcription completion.
const transcribingPlaceholder = "Transcribing…"

// applyStreamDelta appends one streamed fragment. Text deltas and
// audio-transcript deltas both land here, keyed only by identity, so they
// compose no matter which kinds a transport emits.
func (s *Session) applyStreamDelta(itemID, delta string) {
	s.store.EnsureMessage(itemID, RoleAssistant, "", false)
	s.store.AppendText(itemID, delta)
	s.store.SetStatus(itemID, StatusInProgress)
}

// applySpeechStarted surfaces a user placeholder as soon as voice
// activity is detected, before any transcription exists.
func (s *Session) applySpeechStarted(itemID string) {
	s.store.EnsureMessage(itemID, RoleUser, transcribingPlaceholder, false)
}

// applyTranscriptionCompleted lands the final user transcript. Unlike
// deltas this is a whole-text replacement: the placeholder or partial
// transcript is discarded, not appended to. The item may have been
// created by a transcript delta under the default assistant role, so the
// role is corrected here as well.
func (s *Session) applyTranscriptionCompleted(itemID, transcript string) {
	transcript = strings.TrimSpace(transcript)
	if created := s.store.EnsureMessage(itemID, RoleUser, transcript, false); !created {
		s.store.SetRole(itemID, RoleUser)
		s.store.ReplaceText(itemID, transcript)
	}
	s.store.SetStatus(itemID, StatusDone)
}
