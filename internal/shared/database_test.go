package shared

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDatabase(t *testing.T) {
	for _, driver := range []string{DriverCGO, DriverPureGo} {
		t.Run(driver, func(t *testing.T) {
			t.Run("enables foreign keys", func(t *testing.T) {
				db, err := OpenDatabase(driver, MemoryPath)
				if err != nil {
					t.Fatalf("failed to open database: %v", err)
				}
				defer db.Close()

				var enabled int
				if err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
					t.Fatalf("failed to read pragma: %v", err)
				}
				if enabled != 1 {
					t.Errorf("expected foreign keys to be enabled, got %d", enabled)
				}
			})

			t.Run("file database runs migrations", func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "library.db")
				db, err := OpenDatabase(driver, path)
				if err != nil {
					t.Fatalf("failed to open database: %v", err)
				}
				defer db.Close()

				ConfigureDatabase(db, DatabaseConfig{Path: path, MaxOpenConns: 2, MaxIdleConns: 1})

				if err := RunMigrations(t.Context(), db); err != nil {
					t.Fatalf("failed to run migrations: %v", err)
				}
				if _, err := db.Exec("SELECT 1 FROM play_queue LIMIT 1"); err != nil {
					t.Errorf("play_queue table should exist: %v", err)
				}
			})
		})
	}

	t.Run("unknown driver", func(t *testing.T) {
		_, err := OpenDatabase("postgres", MemoryPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("buildDSN keeps existing parameters", func(t *testing.T) {
		got, err := buildDSN(DriverCGO, "file:test.db?cache=shared")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "file:test.db?cache=shared&_foreign_keys=on&_busy_timeout=5000"
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}
