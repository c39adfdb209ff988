package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/playq/internal/library"
	"github.com/desertthunder/playq/internal/shared"
	"github.com/urfave/cli/v3"
)

// LibrarySeed populates an empty catalog with the sample data.
func (r *Runner) LibrarySeed(ctx context.Context, cmd *cli.Command) error {
	tm, err := r.manager(ctx)
	if err != nil {
		return err
	}

	seeded, err := library.Seed(ctx, tm, r.logger)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	if !seeded {
		return r.writePlain("Catalog already has genres, nothing to seed\n")
	}
	return r.writePlain("✓ Seeded %d genres and %d songs\n", len(library.SampleGenres), len(library.SampleSongs))
}

// LibraryImport adds the songs tagged in the audio files under a directory.
func (r *Runner) LibraryImport(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.StringArg("dir")
	if dir == "" {
		return fmt.Errorf("%w: directory is required", shared.ErrMissingArgument)
	}

	tm, err := r.manager(ctx)
	if err != nil {
		return err
	}

	result, err := library.Import(ctx, tm, dir, r.logger)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", dir, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}
	return r.writePlain(
		"✓ Imported %d songs (%d new genres), %d already in catalog, %d skipped of %d files\n",
		result.Imported, result.GenresCreated, result.Duplicates, result.Skipped, result.Scanned,
	)
}
