package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/playq/internal/models"
)

var (
	_ list.Item = genreItem{}
	_ list.Item = songItem{}
	_ list.Item = queueItem{}
)

// genreItem wraps [models.Genre] to implement [list.Item].
type genreItem struct {
	genre models.Genre
}

func (i genreItem) FilterValue() string { return i.genre.Name }
func (i genreItem) Title() string       { return i.genre.Name }
func (i genreItem) Description() string { return i.genre.Description }

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song models.Song
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string {
	return fmt.Sprintf("%s • %s", i.song.Artist, i.song.FormatDuration())
}

// queueItem is one play queue entry. Rows are identified by queue id so duplicate songs stay distinct.
type queueItem struct {
	queueID int64
	song    models.Song
}

func (i queueItem) FilterValue() string { return i.song.Title }
func (i queueItem) Title() string {
	return fmt.Sprintf("#%d %s - %s (%s)", i.queueID, i.song.Title, i.song.Artist, i.song.FormatDuration())
}
func (i queueItem) Description() string { return i.song.Genre.Name }

func genreItems(genres []models.Genre) []list.Item {
	items := make([]list.Item, len(genres))
	for i, g := range genres {
		items[i] = genreItem{genre: g}
	}
	return items
}

func songItems(songs []models.Song) []list.Item {
	items := make([]list.Item, len(songs))
	for i, s := range songs {
		items[i] = songItem{song: s}
	}
	return items
}

func queueItems(snapshot models.Snapshot) []list.Item {
	items := make([]list.Item, 0, snapshot.Len())
	for id, s := range snapshot.All() {
		items = append(items, queueItem{queueID: id, song: s})
	}
	return items
}

func newList(title string, items []list.Item, showDescription bool) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = showDescription
	if !showDescription {
		delegate.SetSpacing(0)
	}

	l := list.New(items, delegate, defaultPaneWidth, defaultPaneHeight)
	l.Title = title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}
