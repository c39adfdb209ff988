package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/playq/internal/controllers"
	"github.com/desertthunder/playq/internal/models"
)

const (
	defaultPaneWidth  = 36
	defaultPaneHeight = 20
)

// Pane identifies the focused pane in the TUI.
type Pane int

const (
	GenrePane Pane = iota
	SongPane
	QueuePane
	paneCount
)

func (p Pane) String() string {
	switch p {
	case GenrePane:
		return "genres"
	case SongPane:
		return "songs"
	case QueuePane:
		return "queue"
	default:
		return "unknown"
	}
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	ctrl      *controllers.Controllers
	presenter *Presenter
	focus     Pane
	width     int
	height    int
	genreList list.Model
	songList  list.Model
	queueList list.Model
	genre     *models.Genre
	snapshot  models.Snapshot
	err       error
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model. ctrl must publish to presenter.
func NewModel(ctx context.Context, ctrl *controllers.Controllers, presenter *Presenter) *Model {
	return &Model{
		ctx:       ctx,
		ctrl:      ctrl,
		presenter: presenter,
		focus:     GenrePane,
		genreList: newList("Genres", nil, true),
		songList:  newList("Songs", nil, true),
		queueList: newList("Queue", nil, false),
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init loads the genres and the current queue and starts listening for published state.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.presenter.Listen(), m.loadGenres(), m.refreshQueue())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateFocused(msg)
}

// View renders the three panes side by side with a status and help line.
func (m *Model) View() string {
	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderPane(GenrePane, m.genreList),
		m.renderPane(SongPane, m.songList),
		m.renderPane(QueuePane, m.queueList),
	)
	return fmt.Sprintf("%s\n%s\n%s", panes, m.renderStatus(), m.help.ShortHelpView(m.helpKeys()))
}

// Focus returns the focused pane
func (m *Model) Focus() Pane { return m.focus }

// Snapshot returns the last published queue snapshot
func (m *Model) Snapshot() models.Snapshot { return m.snapshot }

// Err returns the last failed action, if any
func (m *Model) Err() error { return m.err }

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.focus):
		m.focus = (m.focus + 1) % paneCount
		return m, nil
	case key.Matches(msg, m.keys.back):
		m.focus = (m.focus + paneCount - 1) % paneCount
		return m, nil
	case key.Matches(msg, m.keys.next):
		return m, m.playNext()
	case key.Matches(msg, m.keys.clear):
		return m, m.clearQueue()
	case key.Matches(msg, m.keys.refresh):
		return m, tea.Batch(m.loadGenres(), m.refreshQueue())
	}

	switch m.focus {
	case GenrePane:
		if key.Matches(msg, m.keys.enter) {
			if item, ok := m.genreList.SelectedItem().(genreItem); ok {
				m.focus = SongPane
				return m, m.selectGenre(item.genre)
			}
			return m, nil
		}
	case SongPane:
		if key.Matches(msg, m.keys.add, m.keys.enter) {
			if item, ok := m.songList.SelectedItem().(songItem); ok {
				return m, m.addSong(item.song)
			}
			return m, nil
		}
	case QueuePane:
		if key.Matches(msg, m.keys.remove) {
			if item, ok := m.queueList.SelectedItem().(queueItem); ok {
				return m, m.removeEntry(item.queueID)
			}
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgGenresLoaded:
		genres, _ := msg.data.([]models.Genre)
		m.err = nil
		return m, tea.Batch(m.genreList.SetItems(genreItems(genres)), m.presenter.Listen())

	case MsgSongsLoaded:
		songs, _ := msg.data.([]models.Song)
		m.err = nil
		if m.genre != nil {
			m.songList.Title = fmt.Sprintf("Songs in %s", m.genre.Name)
		}
		m.songList.ResetSelected()
		return m, tea.Batch(m.songList.SetItems(songItems(songs)), m.presenter.Listen())

	case MsgQueueUpdated:
		snapshot, _ := msg.data.(models.Snapshot)
		m.err = nil
		m.snapshot = snapshot
		m.queueList.Title = fmt.Sprintf("Queue (%d) %s", snapshot.Len(), models.FormatSeconds(snapshot.TotalDuration()))

		index := m.queueList.Index()
		cmd := m.queueList.SetItems(queueItems(snapshot))
		if n := snapshot.Len(); n > 0 && index >= n {
			m.queueList.Select(n - 1)
		}
		return m, tea.Batch(cmd, m.presenter.Listen())

	case MsgActionFailed:
		failure, _ := msg.data.(struct {
			action string
			err    error
		})
		m.err = fmt.Errorf("%s: %w", failure.action, failure.err)
		return m, nil
	}
	return m, nil
}

func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case GenrePane:
		m.genreList, cmd = m.genreList.Update(msg)
	case SongPane:
		m.songList, cmd = m.songList.Update(msg)
	case QueuePane:
		m.queueList, cmd = m.queueList.Update(msg)
	}
	return m, cmd
}

func (m *Model) resize() {
	w := max(m.width/3-4, 10)
	h := max(m.height-6, 5)
	m.genreList.SetSize(w, h)
	m.songList.SetSize(w, h)
	m.queueList.SetSize(w, h)
}

// run executes a controller operation. Successful results arrive through the presenter.
func (m *Model) run(action string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(m.ctx); err != nil {
			return actionFailedMsg(action, err)
		}
		return nil
	}
}

func (m *Model) loadGenres() tea.Cmd {
	return m.run("load genres", m.ctrl.Genres.LoadGenres)
}

func (m *Model) selectGenre(genre models.Genre) tea.Cmd {
	m.genre = &genre
	return m.run("load songs", func(ctx context.Context) error {
		return m.ctrl.Songs.OnGenreSelected(ctx, genre)
	})
}

func (m *Model) addSong(song models.Song) tea.Cmd {
	return m.run("add song", func(ctx context.Context) error {
		return m.ctrl.Queue.OnSongSelected(ctx, song)
	})
}

func (m *Model) playNext() tea.Cmd {
	return m.run("play next", m.ctrl.Queue.OnPlayNext)
}

func (m *Model) removeEntry(queueID int64) tea.Cmd {
	return m.run("remove entry", func(ctx context.Context) error {
		return m.ctrl.Queue.OnSongRemoved(ctx, queueID)
	})
}

func (m *Model) clearQueue() tea.Cmd {
	return m.run("clear queue", m.ctrl.Queue.ClearQueue)
}

func (m *Model) refreshQueue() tea.Cmd {
	return m.run("load queue", m.ctrl.Queue.GetPlayQueue)
}

func (m *Model) renderPane(pane Pane, l list.Model) string {
	style := styles.pane
	if pane == m.focus {
		style = styles.focused
	}
	return style.Render(l.View())
}

func (m *Model) renderStatus() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}

	front, ok := m.snapshot.Front()
	if !ok {
		return styles.warn.Render("Queue is empty")
	}
	return styles.ok.Render(fmt.Sprintf("Up next: %s (%s)", front.Song, front.Song.FormatDuration()))
}

func (m *Model) helpKeys() []key.Binding {
	switch m.focus {
	case GenrePane:
		return []key.Binding{m.keys.enter, m.keys.focus, m.keys.next, m.keys.clear, m.keys.quit}
	case SongPane:
		return []key.Binding{m.keys.add, m.keys.focus, m.keys.next, m.keys.clear, m.keys.quit}
	default:
		return []key.Binding{m.keys.remove, m.keys.focus, m.keys.next, m.keys.clear, m.keys.quit}
	}
}
