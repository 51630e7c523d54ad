package session

import "testing"

func TestItemsPreserveInsertionOrder(t *testing.T) {
	store := newTranscriptStore()
	store.EnsureMessage("a", RoleUser, "first", false)
	store.EnsureMessage("b", RoleAssistant, "second", false)
	store.EnsureMessage("c", RoleUser, "third", false)

	store.ReplaceText("a", "first, edited")
	store.AppendText("c", " still third")
	store.SetStatus("b", StatusDone)

	items := store.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"a", "b", "c"} {
		if items[i].ItemID != want {
			t.Fatalf("expected item %d to be %q, got %q", i, want, items[i].ItemID)
		}
	}
	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt <= items[i-1].CreatedAt {
			t.Fatalf("expected strictly increasing CreatedAt, got %d then %d",
				items[i-1].CreatedAt, items[i].CreatedAt)
		}
	}
}

func TestEnsureMessageIsCreateOnce(t *testing.T) {
	store := newTranscriptStore()
	if !store.EnsureMessage("a", RoleUser, "hello", false) {
		t.Fatalf("expected first EnsureMessage to create the item")
	}
	if store.EnsureMessage("a", RoleAssistant, "other", false) {
		t.Fatalf("expected second EnsureMessage to be a no-op")
	}

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Role != RoleUser || items[0].Text != "hello" {
		t.Fatalf("expected original item to survive, got role=%q text=%q", items[0].Role, items[0].Text)
	}
}

func TestSetStatusIgnoresDowngrade(t *testing.T) {
	store := newTranscriptStore()
	store.EnsureMessage("a", RoleAssistant, "done already", false)
	store.SetStatus("a", StatusDone)

	if store.SetStatus("a", StatusInProgress) {
		t.Fatalf("expected downgrade to be rejected")
	}
	if got := store.Items()[0].Status; got != StatusDone {
		t.Fatalf("expected status to stay DONE, got %q", got)
	}
}

func TestAppendTextRejectsBreadcrumbs(t *testing.T) {
	store := newTranscriptStore()
	crumbID := store.AddBreadcrumb("Tool call: lookup_order", map[string]any{"arguments": "{}"})

	if store.AppendText(crumbID, "extra") {
		t.Fatalf("expected append on a breadcrumb to be rejected")
	}
	if store.Items()[0].Status != StatusDone {
		t.Fatalf("expected breadcrumbs to be born DONE")
	}
}

func TestSetHiddenKeepsItemInStore(t *testing.T) {
	store := newTranscriptStore()
	store.EnsureMessage("a", RoleUser, "hidden later", false)

	if !store.SetHidden("a", true) {
		t.Fatalf("expected SetHidden to report a mutation")
	}
	items := store.Items()
	if len(items) != 1 || !items[0].Hidden {
		t.Fatalf("expected one hidden item, got %+v", items)
	}
}

func TestRevisionAdvancesOnMutation(t *testing.T) {
	store := newTranscriptStore()
	before := store.Revision()

	store.EnsureMessage("a", RoleUser, "", false)
	if store.Revision() == before {
		t.Fatalf("expected revision to advance on create")
	}

	mid := store.Revision()
	store.SetStatus("a", StatusInProgress)
	if store.Revision() != mid {
		t.Fatalf("expected idempotent status set to leave revision untouched")
	}
}
