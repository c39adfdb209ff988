// Package models defines the domain values of the playq music library and the store interfaces that operate on them.
//
// The package contains two categories of types:
//
// 1. Catalog values: plain structs compared by attribute value
//   - [Genre] : a named music genre with a free-form description
//   - [Song] : a catalog song referencing its [Genre]
//
// 2. Play queue values
//   - [QueuedSong] : a (queue id, song) pair
//   - [Snapshot] : the ordered play queue, iterated by ascending queue id
//
// The [GenreStore], [SongStore] and [QueueStore] interfaces describe the persistence operations available inside a transaction.
package models
