package repositories

import (
	"context"
	"fmt"

	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/shared"
)

const queueSequence = "play_queue"

// QueueRepository implements [models.QueueStore] for the persisted play queue.
//
// Entries are append-only: they are created by [QueueRepository.Enqueue] and deleted by the removal operations, never updated.
// Removing an entry never touches the referenced song.
type QueueRepository struct {
	db Executor
}

var _ models.QueueStore = (*QueueRepository)(nil)

// NewQueueRepository creates a new [QueueRepository] with the given executor
func NewQueueRepository(db Executor) *QueueRepository {
	return &QueueRepository{db: db}
}

// GetAllEntries returns the queue as a [models.Snapshot] ordered by ascending queue id.
// An empty queue yields an empty snapshot.
func (r *QueueRepository) GetAllEntries(ctx context.Context) (models.Snapshot, error) {
	query := `
		SELECT q.queue_id, ` + songColumns + `
		FROM play_queue q
		JOIN songs s ON s.id = q.song_id
		JOIN genres g ON g.id = s.genre_id
		ORDER BY q.queue_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to query play queue: %w", err)
	}
	defer rows.Close()

	var entries []models.QueuedSong
	for rows.Next() {
		var e models.QueuedSong
		err := rows.Scan(&e.QueueID, &e.Song.ID, &e.Song.Title, &e.Song.Artist, &e.Song.Duration, &e.Song.Genre.Name, &e.Song.Genre.Description)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to scan queue entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return models.Snapshot{}, fmt.Errorf("row iteration error: %w", err)
	}

	return models.NewSnapshot(entries...), nil
}

// Enqueue appends a new entry for song with a fresh queue id.
//
// The song must be persisted; an unknown song ID returns [shared.ErrNotFound].
// Enqueuing the same song again creates another entry.
func (r *QueueRepository) Enqueue(ctx context.Context, song models.Song) error {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM songs WHERE id = ?)", song.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to resolve song: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: song %d (%s)", shared.ErrNotFound, song.ID, song.Title)
	}

	queueID, err := NextSequence(ctx, r.db, queueSequence)
	if err != nil {
		return fmt.Errorf("failed to generate queue id: %w", err)
	}

	_, err = r.db.ExecContext(ctx, "INSERT INTO play_queue (queue_id, song_id) VALUES (?, ?)", queueID, song.ID)
	if err != nil {
		return fmt.Errorf("failed to insert queue entry: %w", err)
	}

	return nil
}

// DequeueFront deletes the entry with the smallest queue id. Does nothing on an empty queue.
func (r *QueueRepository) DequeueFront(ctx context.Context) error {
	query := `
		DELETE FROM play_queue
		WHERE queue_id = (SELECT MIN(queue_id) FROM play_queue)
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to dequeue: %w", err)
	}
	return nil
}

// RemoveByID deletes the entry with the given queue id. Unknown ids are ignored.
func (r *QueueRepository) RemoveByID(ctx context.Context, queueID int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM play_queue WHERE queue_id = ?", queueID); err != nil {
		return fmt.Errorf("failed to remove queue entry %d: %w", queueID, err)
	}
	return nil
}

// Clear deletes every entry. The queue id sequence is left untouched.
func (r *QueueRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM play_queue"); err != nil {
		return fmt.Errorf("failed to clear play queue: %w", err)
	}
	return nil
}
