package library

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/transaction"
)

var (
	rock = models.Genre{Name: "Rock", Description: "Rock music"}
	jazz = models.Genre{Name: "Jazz", Description: "Jazz music"}
	pop  = models.Genre{Name: "Pop", Description: "Pop music"}
)

// SampleGenres are the genres created by [Seed].
var SampleGenres = []models.Genre{rock, jazz, pop}

// SampleSongs are the songs created by [Seed].
var SampleSongs = []models.Song{
	{Title: "Bohemian Rhapsody", Artist: "Queen", Duration: 354, Genre: rock},
	{Title: "Stairway To Heaven", Artist: "Led Zeppelin", Duration: 482, Genre: rock},
	{Title: "Take Five", Artist: "Dave Brubeck", Duration: 324, Genre: jazz},
	{Title: "Billie Jean", Artist: "Michael Jackson", Duration: 294, Genre: pop},
}

// Seed populates an empty catalog with the sample genres and songs in a single transaction.
//
// A catalog that already has genres is left alone; seeded reports whether anything was written.
func Seed(ctx context.Context, tm *transaction.Manager, logger *log.Logger) (seeded bool, err error) {
	seeded, err = transaction.Do(ctx, tm, func(ctx context.Context, tx *transaction.Tx) (bool, error) {
		count, err := tx.Genres().Count(ctx)
		if err != nil {
			return false, err
		}
		if count > 0 {
			return false, nil
		}

		for _, g := range SampleGenres {
			if err := tx.Genres().Create(ctx, g); err != nil {
				return false, fmt.Errorf("failed to seed genre %s: %w", g.Name, err)
			}
		}
		for _, s := range SampleSongs {
			if err := tx.Songs().Create(ctx, &s); err != nil {
				return false, fmt.Errorf("failed to seed song %s: %w", s.Title, err)
			}
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		logger.Info("seeded catalog", "genres", len(SampleGenres), "songs", len(SampleSongs))
	} else {
		logger.Debug("catalog already populated, skipping seed")
	}
	return seeded, nil
}
