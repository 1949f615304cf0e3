// Package storage owns the persistent (or in-memory) backing store for
// metric points. The store is SQLite; the composite primary key on
// (name, ts) is simultaneously the per-name time index and the ordered
// name index that prefix discovery scans.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/metrondb/metrond/internal/errors"
	"github.com/metrondb/metrond/internal/point"
)

// MemoryLocation is the location string selecting the in-memory backend.
// An in-memory store discards all data on close and never touches disk.
// It runs on a single connection, so an open scan iterator holds off
// writes until it is closed; durable stores read and write concurrently
// under WAL and do not have this limit.
const MemoryLocation = ":memory:"

const (
	// busyTimeoutMs is how long SQLite waits on a locked database before
	// surfacing SQLITE_BUSY, which the engine maps to errors.ErrBusy.
	busyTimeoutMs = 5000

	// maxConnections bounds the connection pool for durable stores.
	// WAL mode lets all but one of them run read snapshots concurrently
	// with a writer.
	maxConnections = 10
)

// Engine is the process-wide shared store. It is opened once at startup
// and passed by handle to the ingestion path and the query engine; it is
// never cloned or re-opened per request.
type Engine struct {
	db       *sql.DB
	location string
	memory   bool
}

// Open opens the store at location, which is either a filesystem path or
// MemoryLocation. The schema is migrated to the current version before
// Open returns. Failures are ErrStorageUnavailable: fatal to the engine
// instance, not retryable.
func Open(location string) (*Engine, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: empty location", errors.ErrStorageUnavailable)
	}

	memory := location == MemoryLocation

	dsn := location
	if !memory {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(%d)",
			location, busyTimeoutMs)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", errors.ErrStorageUnavailable, location, err)
	}

	if memory {
		// Every pool connection would get its own private memory
		// database, so the pool must stay at exactly one connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(maxConnections)
		db.SetMaxIdleConns(maxConnections / 2)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", errors.ErrStorageUnavailable, location, err)
	}

	e := &Engine{db: db, location: location, memory: memory}

	if err := e.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migrate %s: %v", errors.ErrStorageUnavailable, location, err)
	}

	return e, nil
}

// Location returns the location the engine was opened with.
func (e *Engine) Location() string { return e.location }

// InMemory reports whether the engine runs the in-memory backend.
func (e *Engine) InMemory() bool { return e.memory }

// Close closes the store. In-memory data is discarded.
func (e *Engine) Close() error {
	return e.db.Close()
}

// Put inserts a point, overwriting any existing point with the same
// (name, timestamp) key. The write is atomic with respect to concurrent
// readers.
func (e *Engine) Put(ctx context.Context, p point.Point) error {
	_, err := e.db.ExecContext(ctx, `
		INSERT INTO points (name, ts, value) VALUES (?, ?, ?)
		ON CONFLICT(name, ts) DO UPDATE SET value = excluded.value
	`, p.Name, p.Timestamp, p.Value)
	return mapErr(err)
}

// PutBatch inserts points in a single transaction. The batch is
// all-or-nothing: readers either see every point or none of them.
func (e *Engine) PutBatch(ctx context.Context, points []point.Point) error {
	if len(points) == 0 {
		return nil
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return mapErr(err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO points (name, ts, value) VALUES (?, ?, ?)
		ON CONFLICT(name, ts) DO UPDATE SET value = excluded.value
	`)
	if err != nil {
		return mapErr(err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.Name, p.Timestamp, p.Value); err != nil {
			return mapErr(err)
		}
	}

	return mapErr(tx.Commit())
}

// NameRange is a half-open lexicographic name range [Lower, Upper).
// When Bounded is false the range has no upper limit.
type NameRange struct {
	Lower   string
	Upper   string
	Bounded bool
}

// Scan returns a lazy iterator over points whose name falls in names and
// whose timestamp falls in [start, end), ordered by name then timestamp.
// The scan runs on its own pooled connection: under WAL it observes a
// snapshot of the store taken at scan start, independent of in-flight
// writes. The caller must Close the iterator.
func (e *Engine) Scan(ctx context.Context, names NameRange, start, end int64) (*Iterator, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if names.Bounded {
		rows, err = e.db.QueryContext(ctx, `
			SELECT name, ts, value FROM points
			WHERE name >= ? AND name < ? AND ts >= ? AND ts < ?
			ORDER BY name, ts
		`, names.Lower, names.Upper, start, end)
	} else {
		rows, err = e.db.QueryContext(ctx, `
			SELECT name, ts, value FROM points
			WHERE name >= ? AND ts >= ? AND ts < ?
			ORDER BY name, ts
		`, names.Lower, start, end)
	}
	if err != nil {
		return nil, mapErr(err)
	}

	return &Iterator{rows: rows}, nil
}

// Stats describes the stored point set.
type Stats struct {
	Points    int64 `json:"points"`
	Names     int64 `json:"names"`
	SizeBytes int64 `json:"size_bytes"`
}

// Stats returns counts and the database size.
func (e *Engine) Stats(ctx context.Context) (Stats, error) {
	var s Stats

	row := e.db.QueryRowContext(ctx, `SELECT COUNT(*), COUNT(DISTINCT name) FROM points`)
	if err := row.Scan(&s.Points, &s.Names); err != nil {
		return Stats{}, mapErr(err)
	}

	row = e.db.QueryRowContext(ctx, `SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()`)
	if err := row.Scan(&s.SizeBytes); err != nil {
		// Size is best-effort; counts are still valid.
		s.SizeBytes = 0
	}

	return s, nil
}

// mapErr classifies driver errors. Lock contention becomes ErrBusy so
// callers can distinguish retryable contention from data errors.
func mapErr(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		return classify(se.Code(), err)
	}

	return err
}

// classify maps a SQLite result code onto the engine's error kinds.
// Extended result codes carry the primary code in the low byte.
func classify(code int, err error) error {
	switch code & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return fmt.Errorf("%w: %v", errors.ErrBusy, err)
	case sqlite3.SQLITE_IOERR, sqlite3.SQLITE_CORRUPT, sqlite3.SQLITE_NOTADB, sqlite3.SQLITE_CANTOPEN:
		return fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}
	return err
}
