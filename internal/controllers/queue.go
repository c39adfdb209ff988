package controllers

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/transaction"
)

// PlayQueueController applies queue intents and publishes the resulting snapshot.
//
// Each operation mutates and reads back the queue in the same transaction, then publishes the snapshot after the
// transaction has committed. The snapshot is published even when the mutation changed nothing.
type PlayQueueController struct {
	tm     *transaction.Manager
	view   View
	logger *log.Logger
}

func NewPlayQueueController(tm *transaction.Manager, view View, logger *log.Logger) *PlayQueueController {
	return &PlayQueueController{tm: tm, view: view, logger: logger.WithPrefix("queue")}
}

// OnSongSelected appends song to the queue.
func (c *PlayQueueController) OnSongSelected(ctx context.Context, song models.Song) error {
	c.logger.Debug("song selected", "song_id", song.ID, "title", song.Title)
	return c.apply(ctx, func(ctx context.Context, q models.QueueStore) error {
		return q.Enqueue(ctx, song)
	})
}

// OnPlayNext drops the front of the queue.
func (c *PlayQueueController) OnPlayNext(ctx context.Context) error {
	c.logger.Debug("play next")
	return c.apply(ctx, func(ctx context.Context, q models.QueueStore) error {
		return q.DequeueFront(ctx)
	})
}

// OnSongRemoved removes the entry with queueID.
func (c *PlayQueueController) OnSongRemoved(ctx context.Context, queueID int64) error {
	c.logger.Debug("song removed", "queue_id", queueID)
	return c.apply(ctx, func(ctx context.Context, q models.QueueStore) error {
		return q.RemoveByID(ctx, queueID)
	})
}

// ClearQueue removes every entry.
func (c *PlayQueueController) ClearQueue(ctx context.Context) error {
	c.logger.Debug("clear queue")
	return c.apply(ctx, func(ctx context.Context, q models.QueueStore) error {
		return q.Clear(ctx)
	})
}

// GetPlayQueue publishes the current queue without changing it.
func (c *PlayQueueController) GetPlayQueue(ctx context.Context) error {
	return c.apply(ctx, nil)
}

func (c *PlayQueueController) apply(ctx context.Context, mutate func(context.Context, models.QueueStore) error) error {
	snapshot, err := transaction.Do(ctx, c.tm, func(ctx context.Context, tx *transaction.Tx) (models.Snapshot, error) {
		if mutate != nil {
			if err := mutate(ctx, tx.Queue()); err != nil {
				return models.Snapshot{}, err
			}
		}
		return tx.Queue().GetAllEntries(ctx)
	})
	if err != nil {
		return err
	}

	c.logger.Debug("publishing queue", "entries", snapshot.Len())
	c.view.ShowQueue(snapshot)
	return nil
}
