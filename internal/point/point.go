// Package point defines the logical metric point and its validation rules.
package point

import (
	"fmt"
	"math"

	"github.com/metrondb/metrond/internal/errors"
)

// Point is a single named measurement. Points are immutable once written
// and identified by (Name, Timestamp); re-inserting the same key
// overwrites the stored value.
type Point struct {
	Name      string  // Metric name, conventionally dot-delimited segments
	Timestamp int64   // Milliseconds since Unix epoch
	Value     float64 // Measurement value
}

// Validate checks that p is storable. It rejects empty names, non-finite
// values and negative timestamps. The dot-delimited name convention is
// advisory and deliberately not enforced here.
func (p Point) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", errors.ErrInvalidPoint)
	}
	if math.IsNaN(p.Value) {
		return fmt.Errorf("%w: value is NaN (name=%s)", errors.ErrInvalidPoint, p.Name)
	}
	if math.IsInf(p.Value, 0) {
		return fmt.Errorf("%w: value is infinite (name=%s)", errors.ErrInvalidPoint, p.Name)
	}
	if p.Timestamp < 0 {
		return fmt.Errorf("%w: negative timestamp %d (name=%s)", errors.ErrInvalidPoint, p.Timestamp, p.Name)
	}
	return nil
}

// Less reports whether p sorts before other in the store's global order:
// name lexicographic ascending, then timestamp ascending.
func (p Point) Less(other Point) bool {
	if p.Name != other.Name {
		return p.Name < other.Name
	}
	return p.Timestamp < other.Timestamp
}
