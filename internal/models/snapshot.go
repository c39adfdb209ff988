package models

import (
	"iter"
	"slices"
)

// QueuedSong pairs a queue id with the song it references.
type QueuedSong struct {
	QueueID int64 `json:"queue_id"`
	Song    Song  `json:"song"`
}

// Snapshot is an ordered mapping from queue id to [Song].
//
// Entries are always kept in ascending queue id order, which is also insertion and playback order.
type Snapshot struct {
	entries []QueuedSong
}

// NewSnapshot builds a snapshot from the given entries, ordering them by queue id.
func NewSnapshot(entries ...QueuedSong) Snapshot {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b QueuedSong) int {
		switch {
		case a.QueueID < b.QueueID:
			return -1
		case a.QueueID > b.QueueID:
			return 1
		}
		return 0
	})
	return Snapshot{entries: sorted}
}

// Len returns the number of queued songs
func (s Snapshot) Len() int { return len(s.entries) }

// IsEmpty reports whether nothing is queued
func (s Snapshot) IsEmpty() bool { return len(s.entries) == 0 }

// Get returns the song queued under queueID.
func (s Snapshot) Get(queueID int64) (Song, bool) {
	for _, e := range s.entries {
		if e.QueueID == queueID {
			return e.Song, true
		}
	}
	return Song{}, false
}

// Front returns the next entry to play.
func (s Snapshot) Front() (QueuedSong, bool) {
	if len(s.entries) == 0 {
		return QueuedSong{}, false
	}
	return s.entries[0], true
}

// IDs returns the queue ids in playback order
func (s Snapshot) IDs() []int64 {
	ids := make([]int64, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.QueueID
	}
	return ids
}

// Songs returns the queued songs in playback order
func (s Snapshot) Songs() []Song {
	songs := make([]Song, len(s.entries))
	for i, e := range s.entries {
		songs[i] = e.Song
	}
	return songs
}

// Entries returns a copy of the (queue id, song) pairs in playback order
func (s Snapshot) Entries() []QueuedSong {
	return slices.Clone(s.entries)
}

// All iterates the snapshot in ascending queue id order.
func (s Snapshot) All() iter.Seq2[int64, Song] {
	return func(yield func(int64, Song) bool) {
		for _, e := range s.entries {
			if !yield(e.QueueID, e.Song) {
				return
			}
		}
	}
}

// TotalDuration sums the duration of every queued song, in seconds.
func (s Snapshot) TotalDuration() int {
	total := 0
	for _, e := range s.entries {
		total += e.Song.Duration
	}
	return total
}
