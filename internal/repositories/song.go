package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/shared"
)

const songColumns = `s.id, s.title, s.artist, s.duration, g.name, g.description`

// SongRepository implements [models.SongStore].
type SongRepository struct {
	db Executor
}

var _ models.SongStore = (*SongRepository)(nil)

// NewSongRepository creates a new [SongRepository] with the given executor
func NewSongRepository(db Executor) *SongRepository {
	return &SongRepository{db: db}
}

// GetSongsByGenre returns the songs of the named genre ordered by title
func (r *SongRepository) GetSongsByGenre(ctx context.Context, genre models.Genre) ([]models.Song, error) {
	query := `
		SELECT ` + songColumns + `
		FROM songs s
		JOIN genres g ON g.id = s.genre_id
		WHERE g.name = ?
		ORDER BY s.title ASC, s.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, genre.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	songs := []models.Song{}
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return songs, nil
}

// Get retrieves a song by ID
func (r *SongRepository) Get(ctx context.Context, id int64) (models.Song, error) {
	query := `
		SELECT ` + songColumns + `
		FROM songs s
		JOIN genres g ON g.id = s.genre_id
		WHERE s.id = ?
	`

	song, err := scanSong(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Song{}, fmt.Errorf("%w: song %d", shared.ErrNotFound, id)
	}
	return song, err
}

// Create inserts the song under its genre, which must already exist, and sets song.ID
func (r *SongRepository) Create(ctx context.Context, song *models.Song) error {
	if err := song.Validate(); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}

	gid, err := genreID(ctx, r.db, song.Genre.Name)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO songs (title, artist, duration, genre_id) VALUES (?, ?, ?, ?)",
		song.Title, song.Artist, song.Duration, gid,
	)
	if err != nil {
		return fmt.Errorf("failed to insert song: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get song id: %w", err)
	}
	song.ID = id

	return nil
}

// scanSong scans a row selected with songColumns into a [models.Song]
func scanSong(row rowScanner) (models.Song, error) {
	var s models.Song
	err := row.Scan(&s.ID, &s.Title, &s.Artist, &s.Duration, &s.Genre.Name, &s.Genre.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Song{}, err
	}
	if err != nil {
		return models.Song{}, fmt.Errorf("failed to scan song: %w", err)
	}
	return s, nil
}
