package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playq/internal/models"
	"github.com/desertthunder/playq/internal/repositories"
	"github.com/desertthunder/playq/internal/shared"
)

// Session is a dedicated database session able to begin a transaction. [*sql.Conn] implements it.
type Session interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	Close() error
}

// Connector opens a new [Session] for one unit of work.
type Connector func(ctx context.Context) (Session, error)

// Work is a unit of work executed inside a single transaction.
type Work[T any] func(ctx context.Context, tx *Tx) (T, error)

// Tx exposes the stores bound to one open transaction.
type Tx struct {
	id     string
	genres *repositories.GenreRepository
	songs  *repositories.SongRepository
	queue  *repositories.QueueRepository
}

func newTx(id string, sqlTx *sql.Tx) *Tx {
	return &Tx{
		id:     id,
		genres: repositories.NewGenreRepository(sqlTx),
		songs:  repositories.NewSongRepository(sqlTx),
		queue:  repositories.NewQueueRepository(sqlTx),
	}
}

// ID identifies the transaction in log output
func (t *Tx) ID() string { return t.id }

// Genres returns the genre store bound to this transaction
func (t *Tx) Genres() models.GenreStore { return t.genres }

// Songs returns the song store bound to this transaction
func (t *Tx) Songs() models.SongStore { return t.songs }

// Queue returns the play queue store bound to this transaction
func (t *Tx) Queue() models.QueueStore { return t.queue }

// Manager runs units of work against a database.
type Manager struct {
	connect Connector
	logger  *log.Logger
}

// NewManager creates a [Manager] that takes a dedicated [sql.Conn] from db for every unit of work.
func NewManager(db *sql.DB, logger *log.Logger) *Manager {
	return NewManagerWithConnector(func(ctx context.Context) (Session, error) {
		return db.Conn(ctx)
	}, logger)
}

// NewManagerWithConnector creates a [Manager] that obtains sessions from connect.
func NewManagerWithConnector(connect Connector, logger *log.Logger) *Manager {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Manager{connect: connect, logger: logger}
}

// Run executes work in a transaction when no result value is needed.
func (m *Manager) Run(ctx context.Context, work func(ctx context.Context, tx *Tx) error) error {
	_, err := Do(ctx, m, func(ctx context.Context, tx *Tx) (struct{}, error) {
		return struct{}{}, work(ctx, tx)
	})
	return err
}

// Do executes work inside one transaction and returns its result after a successful commit.
//
// The session is released on every path. On failure the zero value of T is returned with an error wrapping
// [shared.ErrTransactionFailed] and the cause.
func Do[T any](ctx context.Context, m *Manager, work Work[T]) (result T, err error) {
	var zero T
	id := shared.GenerateID()
	logger := shared.WithLogger(m.logger, "tx", id)
	started := time.Now()

	session, err := m.connect(ctx)
	if err != nil {
		return zero, fail(fmt.Errorf("%w: %w", shared.ErrDatabase, err))
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			logger.Warn("failed to release session", "error", closeErr)
		}
	}()

	sqlTx, err := session.BeginTx(ctx, nil)
	if err != nil {
		return zero, fail(fmt.Errorf("failed to begin: %w", err))
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Warn("failed to roll back", "error", rbErr)
		}
		logger.Debug("transaction rolled back", "error", err)
	}()
	defer func() {
		if r := recover(); r != nil {
			result, err = zero, fail(fmt.Errorf("panic in unit of work: %v", r))
		}
	}()

	result, err = work(ctx, newTx(id, sqlTx))
	if err != nil {
		return zero, fail(err)
	}

	if err := sqlTx.Commit(); err != nil {
		return zero, fail(fmt.Errorf("failed to commit: %w", err))
	}
	committed = true

	logger.Debug("transaction committed", "elapsed", time.Since(started))
	return result, nil
}

func fail(cause error) error {
	return fmt.Errorf("%w: %w", shared.ErrTransactionFailed, cause)
}
