// package models defines the data model for the play queue service
package models

import (
	"context"
	"fmt"
	"strings"
)

// Genre is a catalog genre. Names are unique by convention.
type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks that the genre has a name
func (g Genre) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("genre name is required")
	}
	return nil
}

func (g Genre) String() string { return g.Name }

// Song is a catalog song. ID is assigned by the store and is zero until the song is persisted.
type Song struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration int    `json:"duration"` // seconds
	Genre    Genre  `json:"genre"`
}

// Validate checks the song's required attributes
func (s Song) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("song title is required")
	}
	if strings.TrimSpace(s.Artist) == "" {
		return fmt.Errorf("song artist is required")
	}
	if s.Duration < 0 {
		return fmt.Errorf("song duration must not be negative: %d", s.Duration)
	}
	if err := s.Genre.Validate(); err != nil {
		return fmt.Errorf("invalid genre: %w", err)
	}
	return nil
}

// Equal reports whether every attribute, including the ID, matches.
func (s Song) Equal(other Song) bool {
	return s == other
}

// Matches compares attributes only, ignoring the store assigned ID.
func (s Song) Matches(other Song) bool {
	return s.Title == other.Title && s.Artist == other.Artist && s.Duration == other.Duration && s.Genre == other.Genre
}

// FormatDuration renders the duration as m:ss
func (s Song) FormatDuration() string {
	return FormatSeconds(s.Duration)
}

// FormatSeconds renders a number of seconds as m:ss
func FormatSeconds(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func (s Song) String() string {
	return fmt.Sprintf("%s - %s", s.Artist, s.Title)
}

// GenreStore is the read/write catalog access for genres.
type GenreStore interface {
	// GetAllGenres returns every genre ordered by name
	GetAllGenres(ctx context.Context) ([]Genre, error)
	// GetByName returns shared.ErrNotFound when absent
	GetByName(ctx context.Context, name string) (Genre, error)
	// Create inserts a new genre
	Create(ctx context.Context, genre Genre) error
	// Count returns the number of genres
	Count(ctx context.Context) (int, error)
}

// SongStore is the read/write catalog access for songs.
type SongStore interface {
	// GetSongsByGenre returns the genre's songs ordered by title
	GetSongsByGenre(ctx context.Context, genre Genre) ([]Song, error)
	// Get returns shared.ErrNotFound when absent
	Get(ctx context.Context, id int64) (Song, error)
	// Create inserts the song and sets its ID
	Create(ctx context.Context, song *Song) error
}

// QueueStore owns the ordered play queue.
type QueueStore interface {
	// GetAllEntries returns the queue ordered by queue id
	GetAllEntries(ctx context.Context) (Snapshot, error)
	// Enqueue appends a new entry for an existing song
	Enqueue(ctx context.Context, song Song) error
	// DequeueFront removes the oldest entry, if any
	DequeueFront(ctx context.Context) error
	// RemoveByID removes the entry with that queue id, if any
	RemoveByID(ctx context.Context, queueID int64) error
	// Clear removes every entry
	Clear(ctx context.Context) error
}
