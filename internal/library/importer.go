package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/shared"
	"github.com/desertthunder/playq/internal/transaction"
	"github.com/dhowden/tag"
)

// ImportedDescription is the description given to genres created by [Import].
const ImportedDescription = "Imported"

// ImportResult summarizes one [Import] run.
type ImportResult struct {
	Scanned       int `json:"scanned"`
	Imported      int `json:"imported"`
	Duplicates    int `json:"duplicates"`
	Skipped       int `json:"skipped"`
	GenresCreated int `json:"genres_created"`
}

// isAudioFile checks if a file is an importable audio file based on its extension
func isAudioFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp3", ".flac", ".ogg", ".m4a":
		return true
	default:
		return false
	}
}

// readSong builds a song from the tags of the file at path. Duration is not carried by tags and is left at zero.
func readSong(path string) (models.Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Song{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return models.Song{}, err
	}

	song := models.Song{
		Title:  strings.TrimSpace(m.Title()),
		Artist: strings.TrimSpace(m.Artist()),
		Genre:  models.Genre{Name: strings.TrimSpace(m.Genre()), Description: ImportedDescription},
	}
	if err := song.Validate(); err != nil {
		return models.Song{}, fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}
	return song, nil
}

// Import walks dir, reads the tags of every audio file and adds the songs to the catalog in a single transaction.
//
// Unknown genres are created. Files that cannot be read or lack a title, artist or genre are skipped, and songs
// already in the catalog are not inserted twice.
func Import(ctx context.Context, tm *transaction.Manager, dir string, logger *log.Logger) (ImportResult, error) {
	var result ImportResult
	var found []models.Song

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isAudioFile(d.Name()) {
			return nil
		}

		result.Scanned++
		song, err := readSong(path)
		if err != nil {
			result.Skipped++
			logger.Warn("skipping file", "path", path, "error", err)
			return nil
		}
		found = append(found, song)
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	counts, err := transaction.Do(ctx, tm, func(ctx context.Context, tx *transaction.Tx) (ImportResult, error) {
		var counts ImportResult
		genres := map[string]models.Genre{}
		catalog := map[string][]models.Song{}

		for _, song := range found {
			name := song.Genre.Name
			genre, ok := genres[name]
			if !ok {
				resolved, created, err := resolveGenre(ctx, tx, song.Genre)
				if err != nil {
					return counts, err
				}
				if created {
					counts.GenresCreated++
				}
				existing, err := tx.Songs().GetSongsByGenre(ctx, resolved)
				if err != nil {
					return counts, err
				}
				genre, genres[name], catalog[name] = resolved, resolved, existing
			}

			song.Genre = genre
			if containsSong(catalog[name], song) {
				counts.Duplicates++
				continue
			}
			if err := tx.Songs().Create(ctx, &song); err != nil {
				return counts, err
			}
			counts.Imported++
			catalog[name] = append(catalog[name], song)
		}
		return counts, nil
	})
	if err != nil {
		return result, err
	}

	result.Imported = counts.Imported
	result.Duplicates = counts.Duplicates
	result.GenresCreated = counts.GenresCreated

	logger.Info("import finished",
		"dir", dir,
		"scanned", result.Scanned,
		"imported", result.Imported,
		"duplicates", result.Duplicates,
		"skipped", result.Skipped,
	)
	return result, nil
}

// resolveGenre returns the stored genre with the same name, creating it when missing
func resolveGenre(ctx context.Context, tx *transaction.Tx, genre models.Genre) (models.Genre, bool, error) {
	stored, err := tx.Genres().GetByName(ctx, genre.Name)
	if err == nil {
		return stored, false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return models.Genre{}, false, err
	}

	if err := tx.Genres().Create(ctx, genre); err != nil {
		return models.Genre{}, false, err
	}
	return genre, true, nil
}

func containsSong(songs []models.Song, song models.Song) bool {
	for _, s := range songs {
		if s.Matches(song) {
			return true
		}
	}
	return false
}
