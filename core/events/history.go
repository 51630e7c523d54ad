package events

import "strings"

const (
	// KindHistoryItemAdded identifies a single authoritative item snapshot.
	KindHistoryItemAdded Kind = "history.item_added"
	// KindHistoryItemsUpdated identifies a batch of item snapshots.
	KindHistoryItemsUpdated Kind = "history.items_updated"
)

// ItemKind distinguishes the shapes a history item snapshot can take.
type ItemKind string

const (
	ItemKindMessage      ItemKind = "message"
	ItemKindFunctionCall ItemKind = "function_call"
)

// FragmentKind tags one content fragment inside a message snapshot.
type FragmentKind string

const (
	FragmentText       FragmentKind = "text"
	FragmentInputText  FragmentKind = "input_text"
	FragmentInputAudio FragmentKind = "input_audio"
	FragmentAudio      FragmentKind = "audio"
)

// ContentFragment is one piece of a message snapshot's content. Text
// fragments carry Text, audio fragments carry the Transcript derived from
// them; either may be empty while the item is still in progress.
type ContentFragment struct {
	Kind       FragmentKind
	Text       string
	Transcript string
}

// displayText extracts the renderable string for the fragment.
func (f ContentFragment) displayText() string {
	switch f.Kind {
	case FragmentText, FragmentInputText:
		return f.Text
	case FragmentInputAudio, FragmentAudio:
		return f.Transcript
	}
	return ""
}

// ItemSnapshot is an authoritative representation of one history item at a
// point in time. Snapshots for the same ID are re-sent with progressively
// more fields filled in; the latest one always supersedes the rest.
type ItemSnapshot struct {
	ID      string
	Kind    ItemKind
	Role    string
	Status  string
	Content []ContentFragment

	// Function call fields, empty for messages.
	Name      string
	CallID    string
	Arguments string
	Output    string
}

// DisplayText derives the single display string for a message snapshot by
// joining the non-empty fragment texts with one space. An empty result
// means the snapshot carries no renderable content yet and must not
// overwrite whatever an earlier delta produced.
func (s ItemSnapshot) DisplayText() string {
	parts := make([]string, 0, len(s.Content))
	for _, fragment := range s.Content {
		if text := fragment.displayText(); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Completed reports whether the snapshot declares the item finished.
func (s ItemSnapshot) Completed() bool {
	return s.Status == "completed"
}

// HasStatus reports whether the snapshot carries a status at all; absent
// status leaves the local item's status untouched.
func (s ItemSnapshot) HasStatus() bool {
	return s.Status != ""
}

// HistoryItemAdded carries one new authoritative item snapshot.
type HistoryItemAdded struct {
	Base
	Item ItemSnapshot
}

// NewHistoryItemAdded creates a history item added event.
func NewHistoryItemAdded(item ItemSnapshot) HistoryItemAdded {
	return HistoryItemAdded{Base: NewBase(KindHistoryItemAdded), Item: item}
}

// HistoryItemsUpdated carries an ordered batch of item snapshots.
type HistoryItemsUpdated struct {
	Base
	Items []ItemSnapshot
}

// NewHistoryItemsUpdated creates a history items updated event.
func NewHistoryItemsUpdated(items []ItemSnapshot) HistoryItemsUpdated {
	return HistoryItemsUpdated{Base: NewBase(KindHistoryItemsUpdated), Items: items}
}
