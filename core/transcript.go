package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ItemType distinguishes conversation messages from breadcrumbs.
type ItemType string

const (
	ItemTypeMessage    ItemType = "MESSAGE"
	ItemTypeBreadcrumb ItemType = "BREADCRUMB"
)

// Role identifies who a message item belongs to. Only meaningful for
// messages.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ItemStatus is the item lifecycle state. The only legal transition is
// IN_PROGRESS to DONE; the store ignores downgrades.
type ItemStatus string

const (
	StatusInProgress ItemStatus = "IN_PROGRESS"
	StatusDone       ItemStatus = "DONE"
)

// TranscriptItem is one visible unit of conversation.
type TranscriptItem struct {
	ItemID string
	Type   ItemType
	Role   Role
	// Title is the display heading for breadcrumbs.
	Title  string
	Text   string
	Status ItemStatus
	// CreatedAt is a monotonic insertion timestamp in unix milliseconds,
	// assigned once and never mutated. Renderers sort by it, stable for
	// ties.
	CreatedAt int64
	// Hidden suppresses rendering without removing the item.
	Hidden bool
	// Data is the opaque aux payload breadcrumbs carry (tool arguments
	// and, once known, output).
	Data map[string]any
}

// transcriptStore is the authoritative ordered collection of transcript
// items. Items are only ever appended or mutated in place, never removed.
type transcriptStore struct {
	mu       sync.Mutex
	items    []*TranscriptItem
	byID     map[string]*TranscriptItem
	lastTime int64
	revision uint64
}

func newTranscriptStore() *transcriptStore {
	return &transcriptStore{byID: map[string]*TranscriptItem{}}
}

// nextTimestampLocked hands out strictly increasing timestamps so that
// insertion order survives a sort by CreatedAt even when the wall clock
// does not advance between inserts.
func (s *transcriptStore) nextTimestampLocked() int64 {
	now := time.Now().UnixMilli()
	if now <= s.lastTime {
		now = s.lastTime + 1
	}
	s.lastTime = now
	return now
}

// EnsureMessage creates a message item unless one with the identity
// already exists. Returns whether the item was created by this call.
func (s *transcriptStore) EnsureMessage(itemID string, role Role, text string, hidden bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[itemID]; exists {
		return false
	}

	item := &TranscriptItem{
		ItemID:    itemID,
		Type:      ItemTypeMessage,
		Role:      role,
		Text:      text,
		Status:    StatusInProgress,
		CreatedAt: s.nextTimestampLocked(),
		Hidden:    hidden,
	}
	s.items = append(s.items, item)
	s.byID[itemID] = item
	s.revision++
	return true
}

// AddBreadcrumb appends a breadcrumb item and returns its identity.
// Breadcrumbs are born DONE.
func (s *transcriptStore) AddBreadcrumb(title string, data map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := &TranscriptItem{
		ItemID:    "breadcrumb-" + uuid.NewString(),
		Type:      ItemTypeBreadcrumb,
		Title:     title,
		Status:    StatusDone,
		CreatedAt: s.nextTimestampLocked(),
		Data:      data,
	}
	s.items = append(s.items, item)
	s.byID[item.ItemID] = item
	s.revision++
	return item.ItemID
}

// Contains reports whether an item with the identity exists.
func (s *transcriptStore) Contains(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.byID[itemID]
	return exists
}

// AppendText grows a message item's text by the given delta.
func (s *transcriptStore) AppendText(itemID, delta string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.byID[itemID]
	if !exists || item.Type != ItemTypeMessage {
		return false
	}
	item.Text += delta
	s.revision++
	return true
}

// ReplaceText wholesale-replaces a message item's text. This is the only
// way an item's text may shrink.
func (s *transcriptStore) ReplaceText(itemID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.byID[itemID]
	if !exists || item.Type != ItemTypeMessage {
		return false
	}
	item.Text = text
	s.revision++
	return true
}

// SetRole corrects a message item's attribution. Transcript deltas can
// surface an item before any event declares who it belongs to.
func (s *transcriptStore) SetRole(itemID string, role Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.byID[itemID]
	if !exists || item.Type != ItemTypeMessage || item.Role == role {
		return false
	}
	item.Role = role
	s.revision++
	return true
}

// SetStatus moves an item toward DONE. Downgrades from DONE back to
// IN_PROGRESS are ignored.
func (s *transcriptStore) SetStatus(itemID string, status ItemStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.byID[itemID]
	if !exists {
		return false
	}
	if item.Status == StatusDone && status == StatusInProgress {
		return false
	}
	if item.Status == status {
		return true
	}
	item.Status = status
	s.revision++
	return true
}

// SetHidden toggles render suppression for an item.
func (s *transcriptStore) SetHidden(itemID string, hidden bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.byID[itemID]
	if !exists || item.Hidden == hidden {
		return false
	}
	item.Hidden = hidden
	s.revision++
	return true
}

// Items returns a copy of the store in insertion order, which is also
// CreatedAt order.
func (s *transcriptStore) Items() []TranscriptItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]TranscriptItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, *item)
	}
	return items
}

// Revision increments on every mutation; consumers use it to detect
// whether an applied event changed anything visible.
func (s *transcriptStore) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.revision
}
