package transaction

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/shared"
	tu "github.com/desertthunder/playq/internal/testing"
)

var errBoom = errors.New("boom")

type fakeSession struct {
	beginErr error
	closed   int
}

func (s *fakeSession) BeginTx(context.Context, *sql.TxOptions) (*sql.Tx, error) {
	return nil, s.beginErr
}

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

func queueSnapshot(t *testing.T, m *Manager) models.Snapshot {
	t.Helper()
	snap, err := Do(t.Context(), m, func(ctx context.Context, tx *Tx) (models.Snapshot, error) {
		return tx.Queue().GetAllEntries(ctx)
	})
	if err != nil {
		t.Fatalf("failed to read queue: %v", err)
	}
	return snap
}

func TestDo(t *testing.T) {
	t.Run("commits work and returns its result", func(t *testing.T) {
		db := tu.NewTestDB(t)
		songs := tu.SeedCatalog(t, db)
		m := NewManager(db, nil)

		snap, err := Do(t.Context(), m, func(ctx context.Context, tx *Tx) (models.Snapshot, error) {
			if err := tx.Queue().Enqueue(ctx, songs["Take Five"]); err != nil {
				return models.Snapshot{}, err
			}
			return tx.Queue().GetAllEntries(ctx)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Len() != 1 {
			t.Fatalf("expected 1 entry in result, got %d", snap.Len())
		}

		if got := queueSnapshot(t, m); got.Len() != 1 {
			t.Errorf("expected committed entry to be visible, got %d entries", got.Len())
		}
	})

	t.Run("exposes all three stores", func(t *testing.T) {
		db := tu.NewTestDB(t)
		m := NewManager(db, nil)

		err := m.Run(t.Context(), func(ctx context.Context, tx *Tx) error {
			if tx.Genres() == nil || tx.Songs() == nil || tx.Queue() == nil {
				t.Error("expected non-nil stores")
			}
			if tx.ID() == "" {
				t.Error("expected transaction id")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rolls back when work fails", func(t *testing.T) {
		db := tu.NewTestDB(t)
		songs := tu.SeedCatalog(t, db)
		m := NewManager(db, nil)

		if err := m.Run(t.Context(), func(ctx context.Context, tx *Tx) error {
			return tx.Queue().Enqueue(ctx, songs["Billie Jean"])
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := queueSnapshot(t, m)

		result, err := Do(t.Context(), m, func(ctx context.Context, tx *Tx) (int, error) {
			if err := tx.Queue().Enqueue(ctx, songs["Take Five"]); err != nil {
				return 0, err
			}
			if err := tx.Queue().Clear(ctx); err != nil {
				return 0, err
			}
			return 42, errBoom
		})
		if !errors.Is(err, shared.ErrTransactionFailed) {
			t.Errorf("expected ErrTransactionFailed, got %v", err)
		}
		if !errors.Is(err, errBoom) {
			t.Errorf("expected cause to be preserved, got %v", err)
		}
		if result != 0 {
			t.Errorf("expected zero result on failure, got %d", result)
		}

		after := queueSnapshot(t, m)
		if !equalSnapshots(before, after) {
			t.Errorf("expected queue unchanged after rollback, before %v after %v", before.IDs(), after.IDs())
		}
	})

	t.Run("store errors keep their sentinel", func(t *testing.T) {
		db := tu.NewTestDB(t)
		m := NewManager(db, nil)

		err := m.Run(t.Context(), func(ctx context.Context, tx *Tx) error {
			return tx.Queue().Enqueue(ctx, models.Song{ID: 999, Title: "Ghost", Artist: "Nobody", Genre: tu.Rock})
		})
		if !errors.Is(err, shared.ErrTransactionFailed) || !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrTransactionFailed wrapping ErrNotFound, got %v", err)
		}
	})

	t.Run("recovers from a panicking unit of work", func(t *testing.T) {
		db := tu.NewTestDB(t)
		songs := tu.SeedCatalog(t, db)
		m := NewManager(db, nil)

		err := m.Run(t.Context(), func(ctx context.Context, tx *Tx) error {
			if err := tx.Queue().Enqueue(ctx, songs["Take Five"]); err != nil {
				return err
			}
			panic("unexpected")
		})
		if !errors.Is(err, shared.ErrTransactionFailed) {
			t.Errorf("expected ErrTransactionFailed, got %v", err)
		}
		if got := queueSnapshot(t, m); !got.IsEmpty() {
			t.Errorf("expected rolled back queue, got %v", got.IDs())
		}
	})

	t.Run("stores expire with the transaction", func(t *testing.T) {
		db := tu.NewTestDB(t)
		m := NewManager(db, nil)

		var leaked models.QueueStore
		if err := m.Run(t.Context(), func(ctx context.Context, tx *Tx) error {
			leaked = tx.Queue()
			return nil
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := leaked.Clear(t.Context()); !errors.Is(err, sql.ErrTxDone) {
			t.Errorf("expected sql.ErrTxDone from a finished transaction, got %v", err)
		}
	})

	t.Run("releases the session when begin fails", func(t *testing.T) {
		session := &fakeSession{beginErr: errBoom}
		m := NewManagerWithConnector(func(context.Context) (Session, error) { return session, nil }, nil)

		called := false
		err := m.Run(t.Context(), func(context.Context, *Tx) error {
			called = true
			return nil
		})
		if !errors.Is(err, shared.ErrTransactionFailed) || !errors.Is(err, errBoom) {
			t.Errorf("expected wrapped begin failure, got %v", err)
		}
		if called {
			t.Error("expected work not to run")
		}
		if session.closed != 1 {
			t.Errorf("expected session closed once, got %d", session.closed)
		}
	})

	t.Run("wraps connection failures", func(t *testing.T) {
		m := NewManagerWithConnector(func(context.Context) (Session, error) { return nil, errBoom }, nil)

		err := m.Run(t.Context(), func(context.Context, *Tx) error { return nil })
		if !errors.Is(err, shared.ErrTransactionFailed) || !errors.Is(err, shared.ErrDatabase) {
			t.Errorf("expected ErrTransactionFailed wrapping ErrDatabase, got %v", err)
		}
		if !errors.Is(err, errBoom) {
			t.Errorf("expected cause to be preserved, got %v", err)
		}
	})

	t.Run("fails on a cancelled context", func(t *testing.T) {
		db := tu.NewTestDB(t)
		m := NewManager(db, nil)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := m.Run(ctx, func(context.Context, *Tx) error { return nil })
		if !errors.Is(err, shared.ErrTransactionFailed) {
			t.Errorf("expected ErrTransactionFailed, got %v", err)
		}
	})
}

func equalSnapshots(a, b models.Snapshot) bool {
	ea, eb := a.Entries(), b.Entries()
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if ea[i].QueueID != eb[i].QueueID || !ea[i].Song.Equal(eb[i].Song) {
			return false
		}
	}
	return true
}
