package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/shared"
)

// GenreRepository implements [models.GenreStore].
type GenreRepository struct {
	db Executor
}

var _ models.GenreStore = (*GenreRepository)(nil)

// NewGenreRepository creates a new [GenreRepository] with the given executor
func NewGenreRepository(db Executor) *GenreRepository {
	return &GenreRepository{db: db}
}

// GetAllGenres returns every genre ordered by name
func (r *GenreRepository) GetAllGenres(ctx context.Context) ([]models.Genre, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name, description FROM genres ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	genres := []models.Genre{}
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.Name, &g.Description); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return genres, nil
}

// GetByName retrieves a genre by its name
func (r *GenreRepository) GetByName(ctx context.Context, name string) (models.Genre, error) {
	var g models.Genre
	err := r.db.QueryRowContext(ctx, "SELECT name, description FROM genres WHERE name = ?", name).Scan(&g.Name, &g.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Genre{}, fmt.Errorf("%w: genre %q", shared.ErrNotFound, name)
	}
	if err != nil {
		return models.Genre{}, fmt.Errorf("failed to scan genre: %w", err)
	}
	return g, nil
}

// Create inserts a new genre
func (r *GenreRepository) Create(ctx context.Context, genre models.Genre) error {
	if err := genre.Validate(); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}

	_, err := r.db.ExecContext(ctx, "INSERT INTO genres (name, description) VALUES (?, ?)", genre.Name, genre.Description)
	if err != nil {
		return fmt.Errorf("failed to insert genre: %w", err)
	}
	return nil
}

// Count returns the number of genres in the catalog
func (r *GenreRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM genres").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return count, nil
}

// genreID resolves the surrogate key of the genre with the given name.
func genreID(ctx context.Context, db Executor, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, "SELECT id FROM genres WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: genre %q", shared.ErrNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve genre: %w", err)
	}
	return id, nil
}
