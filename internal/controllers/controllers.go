package controllers

import (
	"github.com/charmbracelet/log"
	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/shared"
	"github.com/desertthunder/playq/internal/transaction"
)

// View receives state published by the controllers. Calls are one-way notifications.
type View interface {
	ShowGenres(genres []models.Genre)
	ShowSongs(songs []models.Song)
	ShowQueue(snapshot models.Snapshot)
}

// Controllers groups the controllers sharing one transaction manager and view.
type Controllers struct {
	Genres *GenreController
	Songs  *SongController
	Queue  *PlayQueueController
}

// New wires every controller to tm and view.
func New(tm *transaction.Manager, view View, logger *log.Logger) *Controllers {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Controllers{
		Genres: NewGenreController(tm, view, logger),
		Songs:  NewSongController(tm, view, logger),
		Queue:  NewPlayQueueController(tm, view, logger),
	}
}
