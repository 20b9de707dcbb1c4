package window

import "fmt"

// Windows is the result of slicing one well: a row-major matrix of window
// rows plus one label and one center index per row.
//   - rows, cols hold the matrix shape; rows may be zero.
//   - data has length rows*cols (offset = i*cols + j).
type Windows struct {
	rows, cols int
	data       []float64
	labels     []float64
	centers    []int
}

// Rows returns the number of windows.
func (w *Windows) Rows() int { return w.rows }

// Cols returns the row length: 2*(width/2)+1, plus one with a velocity.
func (w *Windows) Cols() int { return w.cols }

// Row returns a copy of row i.
func (w *Windows) Row(i int) ([]float64, error) {
	if i < 0 || i >= w.rows {
		return nil, fmt.Errorf("Windows.Row(%d): %w", i, ErrRowOutOfRange)
	}
	out := make([]float64, w.cols)
	copy(out, w.data[i*w.cols:(i+1)*w.cols])

	return out, nil
}

// Data returns the flat row-major buffer. Callers must not mutate it.
func (w *Windows) Data() []float64 { return w.data }

// Labels returns the label of every row. Callers must not mutate it.
func (w *Windows) Labels() []float64 { return w.labels }

// Centers returns the center index of every row in increasing order.
func (w *Windows) Centers() []int { return w.centers }

// HalfWidth returns width/2, the number of samples taken on each side of a center.
func HalfWidth(width int) int { return width / 2 }

// Count returns how many windows Slice would produce for a sequence of
// length n. It returns 0 for non-positive width or step.
func Count(n, width, step int) int {
	if width <= 0 || step <= 0 {
		return 0
	}
	h := HalfWidth(width)
	span := n - 2*h // number of admissible centers
	if span <= 0 {
		return 0
	}

	return (span + step - 1) / step
}

// Slice cuts x into windows of half-width width/2 centered at i = h, h+step, ...
// while i < len(x)-h, pairing each with y[i].
//
// Implementation:
//   - Stage 1: validate width and lengths.
//   - Stage 2: size the output exactly with Count.
//   - Stage 3: copy each segment and append the velocity when configured.
//
// Errors:
//   - ErrInvalidWindow if width <= 0.
//   - ErrShapeMismatch if len(x) != len(y).
//
// Complexity: O(R·C) time and memory.
func Slice(x, y []float64, width int, opts ...Option) (*Windows, error) {
	if width <= 0 {
		return nil, fmt.Errorf("Slice(width=%d): %w", width, ErrInvalidWindow)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("Slice(len(x)=%d, len(y)=%d): %w", len(x), len(y), ErrShapeMismatch)
	}
	o := gatherOptions(opts...)

	h := HalfWidth(width)
	seg := 2*h + 1
	cols := seg
	if o.hasVelocity {
		cols++
	}

	rows := Count(len(x), width, o.step)
	w := &Windows{
		rows:    rows,
		cols:    cols,
		data:    make([]float64, rows*cols),
		labels:  make([]float64, rows),
		centers: make([]int, rows),
	}

	var r, i int
	for i = h; i < len(x)-h; i += o.step {
		base := r * cols
		copy(w.data[base:base+seg], x[i-h:i+h+1])
		if o.hasVelocity {
			w.data[base+seg] = o.velocity
		}
		w.labels[r] = y[i]
		w.centers[r] = i
		r++
	}

	return w, nil
}
