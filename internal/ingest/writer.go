// Package ingest validates incoming points and writes them through the
// storage engine.
package ingest

import (
	"context"
	"time"

	"github.com/metrondb/metrond/internal/errors"
	"github.com/metrondb/metrond/internal/logging"
	"github.com/metrondb/metrond/internal/point"
	"github.com/metrondb/metrond/internal/storage"
)

// Writer is the ingestion path. Validation failures are resolved here
// and never reach the storage engine; storage errors propagate to the
// caller unchanged.
type Writer struct {
	store  *storage.Engine
	logger *logging.Logger
	now    func() int64
}

// NewWriter creates a writer over the given store.
func NewWriter(store *storage.Engine, logger *logging.Logger) *Writer {
	return &Writer{
		store:  store,
		logger: logger,
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

// stamp assigns the writer's clock to points submitted without a
// timestamp, so clients that do not track time still get ordered points.
func (w *Writer) stamp(p point.Point) point.Point {
	if p.Timestamp == 0 {
		p.Timestamp = w.now()
	}
	return p
}

// Write validates and stores a single point.
func (w *Writer) Write(ctx context.Context, p point.Point) error {
	p = w.stamp(p)
	if err := p.Validate(); err != nil {
		return err
	}

	if err := w.store.Put(ctx, p); err != nil {
		w.logger.Error("Point write failed", "name", p.Name, "error", err)
		return err
	}
	return nil
}

// WriteBatch validates and stores a batch of points as one transaction.
// Batches are atomic: a single invalid point rejects the whole batch
// before storage is touched, and a committed batch becomes visible to
// readers all at once.
func (w *Writer) WriteBatch(ctx context.Context, points []point.Point) error {
	if len(points) == 0 {
		return nil
	}

	stamped := make([]point.Point, len(points))
	for i, p := range points {
		p = w.stamp(p)
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "point %d", i)
		}
		stamped[i] = p
	}

	if err := w.store.PutBatch(ctx, stamped); err != nil {
		w.logger.Error("Batch write failed", "points", len(stamped), "error", err)
		return err
	}

	w.logger.Debug("Batch written", "points", len(stamped))
	return nil
}
