package controllers

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/transaction"
)

// GenreController publishes the genre list.
type GenreController struct {
	tm     *transaction.Manager
	view   View
	logger *log.Logger
}

func NewGenreController(tm *transaction.Manager, view View, logger *log.Logger) *GenreController {
	return &GenreController{tm: tm, view: view, logger: logger.WithPrefix("genres")}
}

// LoadGenres reads every genre and publishes it to the view.
func (c *GenreController) LoadGenres(ctx context.Context) error {
	c.logger.Debug("loading genres")

	genres, err := transaction.Do(ctx, c.tm, func(ctx context.Context, tx *transaction.Tx) ([]models.Genre, error) {
		return tx.Genres().GetAllGenres(ctx)
	})
	if err != nil {
		return err
	}

	c.view.ShowGenres(genres)
	return nil
}

// SongController publishes the songs of a genre.
type SongController struct {
	tm     *transaction.Manager
	view   View
	logger *log.Logger
}

func NewSongController(tm *transaction.Manager, view View, logger *log.Logger) *SongController {
	return &SongController{tm: tm, view: view, logger: logger.WithPrefix("songs")}
}

// OnGenreSelected reads the songs of genre and publishes them to the view.
func (c *SongController) OnGenreSelected(ctx context.Context, genre models.Genre) error {
	c.logger.Debug("genre selected", "genre", genre.Name)

	songs, err := transaction.Do(ctx, c.tm, func(ctx context.Context, tx *transaction.Tx) ([]models.Song, error) {
		return tx.Songs().GetSongsByGenre(ctx, genre)
	})
	if err != nil {
		return err
	}

	c.view.ShowSongs(songs)
	return nil
}
