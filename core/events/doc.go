// Package events defines the typed session event contract.
//
// Every raw transport event is validated and narrowed into exactly one of
// the types below before any other component sees it. Event kinds are
// grouped by receiver-facing namespaces:
//
//   - stream.*
//   - user_input.*
//   - response.*
//   - history.*
//   - connection.*
//
// Semantics used across the package:
//
//   - Delta: incremental text fragment emitted in stream order, append-only.
//   - Snapshot: authoritative point-in-time representation of a history
//     item; a later snapshot for the same identity supersedes both earlier
//     snapshots and any accumulated deltas.
//   - Completed: terminal state for an item; items never leave it.
//
// stream events
//
//   - StreamTextDelta (stream.text_delta): assistant text fragment.
//   - StreamTranscriptDelta (stream.transcript_delta): audio-transcript
//     fragment; some transports emit these for items that also receive
//     text deltas, so both kinds merge through the same identity-keyed
//     append path.
//
// user_input events
//
//   - UserSpeechStarted (user_input.speech_started): voice activity began
//     for a new user item.
//   - UserTranscriptionCompleted (user_input.transcription_completed):
//     terminal transcript for a user utterance.
//
// response events
//
//   - ResponseDone (response.done): the current assistant response
//     finished generating.
//
// history events
//
//   - HistoryItemAdded (history.item_added): one authoritative item
//     snapshot entered the remote history.
//   - HistoryItemsUpdated (history.items_updated): ordered snapshots of
//     items whose state changed; re-sent wholesale, not edge-triggered.
//
// connection events
//
//   - ConnectionStateChanged (connection.state_changed): transport
//     connection lifecycle.
//
// Unclassified carries anything that failed validation; it exists so the
// apply path can observe and drop malformed input without branching on nil.
package events
