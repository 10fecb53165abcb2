package journal

import (
	"context"
	"path/filepath"
	"testing"
)

func TestRecordAndRecent(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "history", "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer j.Close()

	ctx := context.Background()
	if err := j.Record(ctx, "create_deck", "createDeck", "created deck Japanese"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := j.Record(ctx, "add_note", "addNote", "added note 1502298033753"); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := j.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	// Newest first.
	if entries[0].Tool != "add_note" || entries[1].Tool != "create_deck" {
		t.Fatalf("order wrong: %+v", entries)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Fatalf("created_at not scanned")
	}
}

func TestRecentLimitAndDefault(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer j.Close()

	ctx := context.Background()
	for i := 0; i < 30; i++ {
		if err := j.Record(ctx, "suspend_cards", "suspend", "x"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	entries, err := j.Recent(ctx, 5)
	if err != nil || len(entries) != 5 {
		t.Fatalf("limited recent = %d, %v", len(entries), err)
	}
	entries, err = j.Recent(ctx, 0)
	if err != nil || len(entries) != 20 {
		t.Fatalf("default recent = %d, %v", len(entries), err)
	}
}
