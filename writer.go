// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

package microcomp

import "io"

// Writer compresses everything written to it into an underlying
// io.Writer. The encoder holds no partial output between calls, so every
// Write forwards its data completely; Close only exists to satisfy
// io.WriteCloser and to surface a previously stored error.
//
// Note that Write boundaries are visible to the encoder: a byte pair split
// across two Writes is not replaced by its pair code, and its first half is
// emitted as a literal. Streams remain correct either way.
type Writer struct {
	w   io.Writer
	c   *Compressor
	buf []byte
	err error
}

// NewWriter returns a compressing front-end over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   w,
		c:   NewCompressor(),
		buf: make([]byte, 512),
	}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}

	var written int
	for written < len(p) {
		r := w.c.Compress(p[written:], w.buf)
		written += r.NInput
		if r.NOutput > 0 {
			if _, err := w.w.Write(w.buf[:r.NOutput]); err != nil {
				w.err = err
				return written, err
			}
		}
	}

	return written, nil
}

// Close reports any error stored by an earlier Write. The codec itself
// buffers nothing, so there is nothing to flush.
func (w *Writer) Close() error {
	return w.err
}
