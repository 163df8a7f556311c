// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package draftstore persists drafts in a device-local SQLite database.
//
// Every public operation runs in a single transaction that is committed
// before the call returns. The database runs in WAL mode with
// synchronous=FULL, so a committed mutation survives a process restart.
// Draft content is stored zstd-compressed and returned verbatim.
package draftstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/pdiddy/contentspark/internal/compression"
	"github.com/pdiddy/contentspark/pkg/types"
)

// schemaVersion is written to PRAGMA user_version. A database with a higher
// version was created by a newer build and is refused.
const schemaVersion = 1

const defaultBusyTimeout = 5 * time.Second

// nextTouch yields a sequence value larger than any existing row, so rows
// that share an updated_at millisecond still order by most recent touch.
const nextTouch = `(SELECT COALESCE(MAX(touch_seq), 0) + 1 FROM drafts)`

// Store is the SQLite-backed draft store. The connection is opened on first
// use and cached until Close.
type Store struct {
	path        string
	busyTimeout time.Duration
	clock       Clock
	log         zerolog.Logger
	comp        *compression.Zstd

	mu sync.Mutex
	db *sql.DB
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l.With().Str("component", "draftstore").Logger() }
}

// New returns a Store for the database at cfg.Path. No file is touched
// until the first operation.
func New(cfg types.StoreConfig, opts ...Option) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: store path is empty", ErrStorageUnavailable)
	}
	comp, err := compression.NewZstd()
	if err != nil {
		return nil, fmt.Errorf("creating compressor: %w", err)
	}

	s := &Store{
		path:        cfg.Path,
		busyTimeout: cfg.BusyTimeout,
		clock:       SystemClock,
		log:         zerolog.Nop(),
		comp:        comp,
	}
	if s.busyTimeout <= 0 {
		s.busyTimeout = defaultBusyTimeout
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Close releases the database connection. The Store may be reused; the next
// operation reopens it.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// conn returns the cached connection, opening and migrating it if needed.
// A failed open is not cached.
func (s *Store) conn(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db, nil
	}

	db, err := s.open(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("opening draft store")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	s.db = db
	s.log.Debug().Str("path", s.path).Msg("draft store opened")
	return db, nil
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=FULL&_busy_timeout=%d&_foreign_keys=on",
		s.path, s.busyTimeout.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("schema version %d is newer than supported version %d", version, schemaVersion)
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS drafts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL DEFAULT '',
			content BLOB NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL,
			touch_seq INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_drafts_updated ON drafts(updated_at DESC, touch_seq DESC)`,
		fmt.Sprintf(`PRAGMA user_version = %d`, schemaVersion),
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// inTx runs fn in one transaction. A failure is wrapped with kind.
func (s *Store) inTx(ctx context.Context, op string, kind error, fn func(*sql.Tx) error) error {
	db, err := s.conn(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w: beginning transaction: %w", op, kind, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%s: %w", op, err)
		}
		return fmt.Errorf("%s: %w: %w", op, kind, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w: committing: %w", op, kind, err)
	}
	return nil
}

// Add stores a new draft stamped with the current time and returns its id.
// Ids increase monotonically and are never reused, even after Clear.
func (s *Store) Add(ctx context.Context, title, content string) (int64, error) {
	packed, err := s.comp.Compress([]byte(content))
	if err != nil {
		return 0, fmt.Errorf("adding draft: %w: compressing content: %w", ErrWriteFailure, err)
	}
	now := s.clock.Now().UnixMilli()

	var id int64
	err = s.inTx(ctx, "adding draft", ErrWriteFailure, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO drafts (title, content, created_at, updated_at, touch_seq) VALUES (?, ?, ?, ?, `+nextTouch+`)`,
			title, packed, now, now)
		if err != nil {
			return fmt.Errorf("inserting draft: %w", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}

	s.log.Debug().Int64("id", id).Msg("draft added")
	return id, nil
}

// GetAll returns every draft, most recently updated first. Drafts updated
// within the same millisecond order by most recent touch. The slice is
// empty, not nil, when the store holds no drafts.
func (s *Store) GetAll(ctx context.Context) ([]types.Draft, error) {
	drafts := []types.Draft{}
	err := s.inTx(ctx, "listing drafts", ErrReadFailure, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT id, title, content, created_at, updated_at FROM drafts ORDER BY updated_at DESC, touch_seq DESC`)
		if err != nil {
			return fmt.Errorf("querying drafts: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			d, err := s.scan(rows)
			if err != nil {
				return err
			}
			drafts = append(drafts, d)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

// GetByID returns the draft with id. A missing draft reports false with no error.
func (s *Store) GetByID(ctx context.Context, id int64) (types.Draft, bool, error) {
	var (
		d     types.Draft
		found bool
	)
	err := s.inTx(ctx, fmt.Sprintf("reading draft %d", id), ErrReadFailure, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT id, title, content, created_at, updated_at FROM drafts WHERE id = ?`, id)
		var err error
		d, err = s.scan(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return types.Draft{}, false, err
	}
	return d, found, nil
}

// Update overwrites the title and content of the draft with d.ID. CreatedAt
// is preserved and UpdatedAt never moves backwards. A missing draft fails
// with ErrNotFound. The stored draft is returned.
func (s *Store) Update(ctx context.Context, d types.Draft) (types.Draft, error) {
	packed, err := s.comp.Compress([]byte(d.Content))
	if err != nil {
		return types.Draft{}, fmt.Errorf("updating draft %d: %w: compressing content: %w", d.ID, ErrWriteFailure, err)
	}
	now := s.clock.Now().UnixMilli()

	var out types.Draft
	err = s.inTx(ctx, fmt.Sprintf("updating draft %d", d.ID), ErrWriteFailure, func(tx *sql.Tx) error {
		var createdAt, updatedAt int64
		err := tx.QueryRowContext(ctx,
			`SELECT created_at, updated_at FROM drafts WHERE id = ?`, d.ID).Scan(&createdAt, &updatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("reading current draft: %w", err)
		}

		stamp := max(now, updatedAt)
		if _, err := tx.ExecContext(ctx,
			`UPDATE drafts SET title = ?, content = ?, updated_at = ?, touch_seq = `+nextTouch+` WHERE id = ?`,
			d.Title, packed, stamp, d.ID); err != nil {
			return fmt.Errorf("writing draft: %w", err)
		}

		out = types.Draft{
			ID:        d.ID,
			Title:     d.Title,
			Content:   d.Content,
			CreatedAt: createdAt,
			UpdatedAt: stamp,
		}
		return nil
	})
	if err != nil {
		return types.Draft{}, err
	}

	s.log.Debug().Int64("id", d.ID).Msg("draft updated")
	return out, nil
}

// Delete removes the draft with id. Deleting a missing draft is a no-op.
func (s *Store) Delete(ctx context.Context, id int64) error {
	err := s.inTx(ctx, fmt.Sprintf("deleting draft %d", id), ErrWriteFailure, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
		return err
	})
	if err != nil {
		return err
	}
	s.log.Debug().Int64("id", id).Msg("draft deleted")
	return nil
}

// Clear removes every draft. It cannot be undone.
func (s *Store) Clear(ctx context.Context) error {
	var n int64
	err := s.inTx(ctx, "clearing drafts", ErrWriteFailure, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM drafts`)
		if err != nil {
			return err
		}
		n, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info().Int64("removed", n).Msg("drafts cleared")
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) scan(r scanner) (types.Draft, error) {
	var (
		d      types.Draft
		packed []byte
	)
	if err := r.Scan(&d.ID, &d.Title, &packed, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return types.Draft{}, err
	}
	content, err := s.comp.Decompress(packed)
	if err != nil {
		return types.Draft{}, fmt.Errorf("decompressing draft %d: %w", d.ID, err)
	}
	d.Content = string(content)
	return d, nil
}
