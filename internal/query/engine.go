// Package query composes prefix matching with time-range filtering over
// the storage engine.
package query

import (
	"context"
	"fmt"

	"github.com/metrondb/metrond/internal/errors"
	"github.com/metrondb/metrond/internal/logging"
	"github.com/metrondb/metrond/internal/prefix"
	"github.com/metrondb/metrond/internal/storage"
)

// Query selects all points whose name starts with Prefix (byte-wise) and
// whose timestamp falls in the half-open range [Start, End). An empty
// prefix matches every metric.
type Query struct {
	Prefix string
	Start  int64
	End    int64
}

// Validate rejects queries before any scan begins.
func (q Query) Validate() error {
	if q.Start > q.End {
		return fmt.Errorf("%w: start %d after end %d", errors.ErrInvalidQuery, q.Start, q.End)
	}
	return nil
}

// Engine answers queries against a shared storage engine.
type Engine struct {
	store  *storage.Engine
	logger *logging.Logger
}

// NewEngine creates a query engine over the given store.
func NewEngine(store *storage.Engine, logger *logging.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: logger,
	}
}

// Run executes q and returns a lazy iterator over the result.
//
// The prefix is turned into a half-open name range and pushed, together
// with the time bound, into a single two-dimensional storage scan, so
// matching names are discovered by range scan rather than by examining
// every distinct name. Results are ordered by name lexicographically
// ascending, then by timestamp ascending; the order is stable across
// repeated calls. The iterator reflects a frozen view of the store at
// scan start and must be closed by the caller.
func (e *Engine) Run(ctx context.Context, q Query) (*storage.Iterator, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	lower, upper, bounded := prefix.Range(q.Prefix)

	e.logger.Debug("Running query",
		"prefix", q.Prefix,
		"start", q.Start,
		"end", q.End,
		"name_lower", lower,
		"name_upper", upper,
		"bounded", bounded)

	it, err := e.store.Scan(ctx, storage.NameRange{Lower: lower, Upper: upper, Bounded: bounded}, q.Start, q.End)
	if err != nil {
		e.logger.Error("Query scan failed", "prefix", q.Prefix, "error", err)
		return nil, err
	}

	return it, nil
}
