package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/playq/internal/controllers"
	"github.com/desertthunder/playq/internal/formatter"
	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/transaction"
	"github.com/urfave/cli/v3"
)

// queueAction runs fn against a queue controller that prints to the runner's output.
func (r *Runner) queueAction(ctx context.Context, cmd *cli.Command, fn func(*controllers.PlayQueueController) error) error {
	view := r.newTextView(cmd)
	c, err := r.controllers(ctx, view)
	if err != nil {
		return err
	}

	if err := fn(c.Queue); err != nil {
		return err
	}
	return view.Err()
}

// QueueShow prints the play queue.
func (r *Runner) QueueShow(ctx context.Context, cmd *cli.Command) error {
	return r.queueAction(ctx, cmd, func(q *controllers.PlayQueueController) error {
		return q.GetPlayQueue(ctx)
	})
}

// QueueAdd appends the song with the ID given by --song.
func (r *Runner) QueueAdd(ctx context.Context, cmd *cli.Command) error {
	tm, err := r.manager(ctx)
	if err != nil {
		return err
	}

	id := int64(cmd.Int("song"))
	song, err := transaction.Do(ctx, tm, func(ctx context.Context, tx *transaction.Tx) (models.Song, error) {
		return tx.Songs().Get(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to find song %d: %w", id, err)
	}

	return r.queueAction(ctx, cmd, func(q *controllers.PlayQueueController) error {
		return q.OnSongSelected(ctx, song)
	})
}

// QueueNext drops the front of the queue.
func (r *Runner) QueueNext(ctx context.Context, cmd *cli.Command) error {
	return r.queueAction(ctx, cmd, func(q *controllers.PlayQueueController) error {
		return q.OnPlayNext(ctx)
	})
}

// QueueRemove removes the entry given by --id.
func (r *Runner) QueueRemove(ctx context.Context, cmd *cli.Command) error {
	id := int64(cmd.Int("id"))
	return r.queueAction(ctx, cmd, func(q *controllers.PlayQueueController) error {
		return q.OnSongRemoved(ctx, id)
	})
}

// QueueClear empties the queue.
func (r *Runner) QueueClear(ctx context.Context, cmd *cli.Command) error {
	return r.queueAction(ctx, cmd, func(q *controllers.PlayQueueController) error {
		return q.ClearQueue(ctx)
	})
}

// QueueExport writes the current queue to a file in the format given by --format.
func (r *Runner) QueueExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	tm, err := r.manager(ctx)
	if err != nil {
		return err
	}

	snapshot, err := transaction.Do(ctx, tm, func(ctx context.Context, tx *transaction.Tx) (models.Snapshot, error) {
		return tx.Queue().GetAllEntries(ctx)
	})
	if err != nil {
		return err
	}

	path, err := formatter.WriteExport(snapshot, format, cmd.String("output"))
	if err != nil {
		return fmt.Errorf("failed to export queue: %w", err)
	}

	r.logger.Info("exported play queue", "path", path, "entries", snapshot.Len())
	return r.writePlain("✓ Exported %d songs to %s\n", snapshot.Len(), path)
}
