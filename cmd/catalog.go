package main

import (
	"context"

	"github.com/desertthunder/playq/internal/models"
	"github.com/urfave/cli/v3"
)

// Genres prints every catalog genre.
func (r *Runner) Genres(ctx context.Context, cmd *cli.Command) error {
	view := r.newTextView(cmd)
	c, err := r.controllers(ctx, view)
	if err != nil {
		return err
	}

	if err := c.Genres.LoadGenres(ctx); err != nil {
		return err
	}
	return view.Err()
}

// Songs prints the songs of the genre named by --genre.
func (r *Runner) Songs(ctx context.Context, cmd *cli.Command) error {
	view := r.newTextView(cmd)
	c, err := r.controllers(ctx, view)
	if err != nil {
		return err
	}

	if err := c.Songs.OnGenreSelected(ctx, models.Genre{Name: cmd.String("genre")}); err != nil {
		return err
	}
	return view.Err()
}
