package survey

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// ReadRaw reads a cube stored as ny·nx·nt consecutive float32 samples in
// (y, x, sample) order with the given byte order, as dumped by most seismic
// packages. Values equal to nullValue (when non-nil) become Missing.
//
// Errors:
//   - ErrBadShape for non-positive dimensions.
//   - io.ErrUnexpectedEOF (wrapped) if the stream is short.
func ReadRaw(r io.Reader, ny, nx, nt int, order binary.ByteOrder, nullValue *float32) (*Cube, error) {
	if ny <= 0 || nx <= 0 || nt <= 0 {
		return nil, fmt.Errorf("ReadRaw(%d,%d,%d): %w", ny, nx, nt, ErrBadShape)
	}
	br := bufio.NewReader(r)
	data := make([]float64, ny*nx*nt)
	trace := make([]float32, nt)
	for t := 0; t < ny*nx; t++ {
		if err := binary.Read(br, order, trace); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("ReadRaw: trace %d: %w", t, err)
		}
		for k, v := range trace {
			if nullValue != nil && v == *nullValue {
				data[t*nt+k] = Missing
				continue
			}
			data[t*nt+k] = float64(v)
		}
	}

	return &Cube{ny: ny, nx: nx, nt: nt, data: data}, nil
}

// WriteRaw writes c as float32 samples in (y, x, sample) order. Missing
// samples are written as NaN.
func WriteRaw(w io.Writer, c *Cube, order binary.ByteOrder) error {
	bw := bufio.NewWriter(w)
	buf := make([]float32, c.nt)
	for t := 0; t < c.ny*c.nx; t++ {
		for k := range buf {
			buf[k] = float32(c.data[t*c.nt+k])
		}
		if err := binary.Write(bw, order, buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
