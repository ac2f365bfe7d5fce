package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "snake.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.SaveMessage(ctx, 30, "HYPE", "test"); err != nil {
		t.Fatalf("SaveMessage() failed: %v", err)
	}
	if text, err := store.LookupMessage(ctx, 30); err != nil || text != "HYPE" {
		t.Errorf("LookupMessage() = %q, %v", text, err)
	}
}

func TestLookupMissing(t *testing.T) {
	store := openTemp(t)

	_, err := store.LookupMessage(context.Background(), 10)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LookupMessage() error = %v, expected ErrNotFound", err)
	}
}

func TestSaveMessageReplaces(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	if err := store.SaveMessage(ctx, 30, "first", "remote"); err != nil {
		t.Fatalf("SaveMessage() failed: %v", err)
	}
	if err := store.SaveMessage(ctx, 30, "second", "remote"); err != nil {
		t.Fatalf("SaveMessage() failed: %v", err)
	}

	text, err := store.LookupMessage(ctx, 30)
	if err != nil {
		t.Fatalf("LookupMessage() failed: %v", err)
	}
	if text != "second" {
		t.Errorf("LookupMessage() = %q, expected %q", text, "second")
	}
}

func TestMessagesListAndHits(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	for _, level := range []int{40, 30} {
		if err := store.SaveMessage(ctx, level, "text", "remote"); err != nil {
			t.Fatalf("SaveMessage(%d) failed: %v", level, err)
		}
	}
	for range 2 {
		if _, err := store.LookupMessage(ctx, 30); err != nil {
			t.Fatalf("LookupMessage() failed: %v", err)
		}
	}

	entries, err := store.Messages(ctx)
	if err != nil {
		t.Fatalf("Messages() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != 30 || entries[1].Level != 40 {
		t.Errorf("entries not ordered by level: %+v", entries)
	}
	if entries[0].Hits != 2 || entries[1].Hits != 0 {
		t.Errorf("hits = %d/%d, expected 2/0", entries[0].Hits, entries[1].Hits)
	}
	if entries[0].Source != "remote" {
		t.Errorf("source = %q", entries[0].Source)
	}
}

func TestClearMessages(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	_ = store.SaveMessage(ctx, 30, "a", "")
	_ = store.SaveMessage(ctx, 40, "b", "")

	n, err := store.ClearMessages(ctx)
	if err != nil {
		t.Fatalf("ClearMessages() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearMessages() = %d, expected 2", n)
	}
	entries, _ := store.Messages(ctx)
	if len(entries) != 0 {
		t.Errorf("expected empty cache, got %d entries", len(entries))
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandHome("~/.snake/snake.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".snake", "snake.db"); got != want {
		t.Errorf("expandHome() = %q, expected %q", got, want)
	}
	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
