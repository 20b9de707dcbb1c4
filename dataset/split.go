package dataset

import (
	"fmt"
	"math/rand"
)

// Split shuffles sample indices with the given seed and returns a train and
// a test dataset, the latter holding int(rows·testRatio) samples.
// The same seed always yields the same split.
//
// Errors:
//   - ErrOutOfRange if testRatio is outside [0, 1].
func (d *Dataset) Split(testRatio float64, seed int64) (train, test *Dataset, err error) {
	if !(testRatio >= 0 && testRatio <= 1) {
		return nil, nil, fmt.Errorf("Split(testRatio=%g): %w", testRatio, ErrOutOfRange)
	}
	perm := rand.New(rand.NewSource(seed)).Perm(d.rows)
	nTest := int(float64(d.rows) * testRatio)

	return d.take(perm[nTest:]), d.take(perm[:nTest]), nil
}

// take copies the given rows, in the given order, into a new dataset.
func (d *Dataset) take(idx []int) *Dataset {
	out := &Dataset{
		rows:   len(idx),
		cols:   d.cols,
		data:   make([]float64, 0, len(idx)*d.cols),
		labels: make([]float64, 0, len(idx)),
	}
	for _, i := range idx {
		out.data = append(out.data, d.data[i*d.cols:(i+1)*d.cols]...)
		out.labels = append(out.labels, d.labels[i])
	}

	return out
}
