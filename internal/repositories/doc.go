// Package repositories implements SQLite persistence for the music catalog and the play queue.
//
// Every repository wraps an [Executor], which is a *sql.Tx when created by the transaction manager,
// so all reads and writes of one unit of work share the same transaction.
//
// Key Implementations:
//   - [GenreRepository] : genre lookups ordered by name
//   - [SongRepository] : song lookups by genre, ordered by title
//   - [QueueRepository] : the ordered play queue keyed by queue id
//
// Queue ids come from the play_queue_sequence table through [NextSequence].
// The counter only ever increases, so a queue id is never handed out twice, even after the entry is removed or the queue is cleared.
package repositories
