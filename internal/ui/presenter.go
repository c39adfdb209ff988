package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/playq/internal/controllers"
	"github.com/desertthunder/playq/internal/models"
)

var _ controllers.View = (*Presenter)(nil)

const presenterBuffer = 64

// Presenter implements [controllers.View] by turning every published value into a [Msg] for the bubbletea program.
type Presenter struct {
	updates chan Msg
}

func NewPresenter() *Presenter {
	return &Presenter{updates: make(chan Msg, presenterBuffer)}
}

func (p *Presenter) ShowGenres(genres []models.Genre) { p.updates <- genresLoadedMsg(genres) }
func (p *Presenter) ShowSongs(songs []models.Song)    { p.updates <- songsLoadedMsg(songs) }
func (p *Presenter) ShowQueue(snapshot models.Snapshot) {
	p.updates <- queueUpdatedMsg(snapshot)
}

// Listen waits for the next published value.
func (p *Presenter) Listen() tea.Cmd {
	return func() tea.Msg {
		return <-p.updates
	}
}
