package shared

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestInstanceLock(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "playq.db")

	first, err := AcquireInstanceLock(dbPath)
	if err != nil {
		t.Fatalf("failed to acquire lock: %v", err)
	}

	if _, err := AcquireInstanceLock(dbPath); !errors.Is(err, ErrLocked) {
		t.Errorf("expected ErrLocked for second acquisition, got %v", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("failed to release lock: %v", err)
	}

	second, err := AcquireInstanceLock(dbPath)
	if err != nil {
		t.Fatalf("expected lock to be free after release: %v", err)
	}
	defer second.Release()
}
