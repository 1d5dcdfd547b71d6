package db

import (
	"testing"

	"github.com/johnzilla/woofstagram/internal/config"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	bdb, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer bdb.Close()

	sessions := NewSessionStore(bdb)

	record, err := sessions.Get()
	if err != nil {
		t.Fatalf("get empty: %v", err)
	}
	if record != "" {
		t.Fatalf("expected empty record, got %q", record)
	}

	if err := sessions.Put("token-1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	record, err = sessions.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record != "token-1" {
		t.Fatalf("expected token-1, got %q", record)
	}

	// The fixed key holds at most one record.
	if err := sessions.Put("token-2"); err != nil {
		t.Fatalf("put overwrite: %v", err)
	}
	record, _ = sessions.Get()
	if record != "token-2" {
		t.Fatalf("expected token-2, got %q", record)
	}

	if err := sessions.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	record, err = sessions.Get()
	if err != nil || record != "" {
		t.Fatalf("expected empty record after clear, got %q err %v", record, err)
	}

	// Clearing again is harmless.
	if err := sessions.Clear(); err != nil {
		t.Fatalf("clear twice: %v", err)
	}
}

func TestOpenSessionDBCreatesDirectory(t *testing.T) {
	cfg := config.Config{DataDir: t.TempDir()}

	bdb, err := OpenSessionDB(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer bdb.Close()

	sessions := NewSessionStore(bdb)
	if err := sessions.Put("persisted"); err != nil {
		t.Fatalf("put: %v", err)
	}
}
