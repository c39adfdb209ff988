package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/playq/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgGenresLoaded MsgKind = iota
	MsgSongsLoaded
	MsgQueueUpdated
	MsgActionFailed
)

// Kind reports which message this is
func (m Msg) Kind() MsgKind { return m.kind }

// genresLoadedMsg is the constructor for [MsgGenresLoaded]
func genresLoadedMsg(genres []models.Genre) Msg {
	return Msg{kind: MsgGenresLoaded, data: genres}
}

// songsLoadedMsg is the constructor for [MsgSongsLoaded]
func songsLoadedMsg(songs []models.Song) Msg {
	return Msg{kind: MsgSongsLoaded, data: songs}
}

// queueUpdatedMsg is the constructor for [MsgQueueUpdated]
func queueUpdatedMsg(snapshot models.Snapshot) Msg {
	return Msg{kind: MsgQueueUpdated, data: snapshot}
}

// actionFailedMsg is the constructor for [MsgActionFailed]
func actionFailedMsg(action string, err error) Msg {
	return Msg{
		kind: MsgActionFailed,
		data: struct {
			action string
			err    error
		}{action, err},
	}
}
