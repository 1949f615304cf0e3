package storage

import (
	"database/sql"

	"github.com/metrondb/metrond/internal/point"
)

// Iterator is a lazy, finite, non-restartable sequence of points produced
// by a scan. Rows are decoded on demand so large result sets are never
// materialized. Abandoning an iterator only requires Close; the
// underlying cursor and its snapshot are released with it.
type Iterator struct {
	rows   *sql.Rows
	cur    point.Point
	err    error
	closed bool
}

// Next advances to the next point. It returns false when the sequence is
// exhausted or an error occurred; check Err after the loop.
func (it *Iterator) Next() bool {
	if it.err != nil || it.closed {
		return false
	}
	if !it.rows.Next() {
		it.err = it.rows.Err()
		return false
	}
	if err := it.rows.Scan(&it.cur.Name, &it.cur.Timestamp, &it.cur.Value); err != nil {
		it.err = err
		return false
	}
	return true
}

// Point returns the current point. Valid only after Next returned true.
func (it *Iterator) Point() point.Point {
	return it.cur
}

// Err returns the first error encountered while iterating.
func (it *Iterator) Err() error {
	return mapErr(it.err)
}

// Close releases the underlying cursor. Safe to call more than once.
func (it *Iterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	return mapErr(it.rows.Close())
}

// Collect drains the iterator into a slice and closes it. Intended for
// tests and small result sets; queries should stream.
func (it *Iterator) Collect() ([]point.Point, error) {
	defer it.Close()

	var points []point.Point
	for it.Next() {
		points = append(points, it.Point())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
