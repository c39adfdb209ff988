// package testing contains shared testing utilities
package testing

import (
	"database/sql"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/repositories"
	"github.com/desertthunder/playq/internal/shared"
)

var (
	Rock = models.Genre{Name: "Rock", Description: "Rock music"}
	Jazz = models.Genre{Name: "Jazz", Description: "Jazz music"}
	Pop  = models.Genre{Name: "Pop", Description: "Pop music"}
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(shared.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := shared.RunMigrations(t.Context(), db); err != nil {
		db.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// SeedCatalog inserts Rock, Jazz and Pop with four songs and returns the persisted songs keyed by title.
func SeedCatalog(t *testing.T, db repositories.Executor) map[string]models.Song {
	t.Helper()
	ctx := t.Context()

	genres := repositories.NewGenreRepository(db)
	for _, g := range []models.Genre{Rock, Jazz, Pop} {
		if err := genres.Create(ctx, g); err != nil {
			t.Fatalf("Failed to create genre %s: %v", g.Name, err)
		}
	}

	songs := repositories.NewSongRepository(db)
	seeded := map[string]models.Song{}
	for _, s := range []models.Song{
		{Title: "Bohemian Rhapsody", Artist: "Queen", Duration: 354, Genre: Rock},
		{Title: "Stairway To Heaven", Artist: "Led Zeppelin", Duration: 482, Genre: Rock},
		{Title: "Take Five", Artist: "Dave Brubeck", Duration: 324, Genre: Jazz},
		{Title: "Billie Jean", Artist: "Michael Jackson", Duration: 294, Genre: Pop},
	} {
		if err := songs.Create(ctx, &s); err != nil {
			t.Fatalf("Failed to create song %s: %v", s.Title, err)
		}
		seeded[s.Title] = s
	}
	return seeded
}

// RecordingView captures everything published to it.
type RecordingView struct {
	mu        sync.Mutex
	Genres    [][]models.Genre
	Songs     [][]models.Song
	Snapshots []models.Snapshot
}

func (v *RecordingView) ShowGenres(genres []models.Genre) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Genres = append(v.Genres, genres)
}

func (v *RecordingView) ShowSongs(songs []models.Song) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Songs = append(v.Songs, songs)
}

func (v *RecordingView) ShowQueue(snapshot models.Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Snapshots = append(v.Snapshots, snapshot)
}

// LastQueue returns the most recently published snapshot
func (v *RecordingView) LastQueue(t *testing.T) models.Snapshot {
	t.Helper()
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.Snapshots) == 0 {
		t.Fatal("Expected at least one published queue snapshot")
	}
	return v.Snapshots[len(v.Snapshots)-1]
}

// QueueUpdates returns how many snapshots have been published
func (v *RecordingView) QueueUpdates() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.Snapshots)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
