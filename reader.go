// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

package microcomp

import "io"

// Reader decompresses the stream read from an underlying io.Reader. When
// the Decompressor runs in EOF-sentinel mode, the sentinel terminates the
// stream and Read reports io.EOF; trailing bytes after the sentinel are
// left untouched in the Reader's buffer.
type Reader struct {
	dec *Decompressor

	src    io.Reader
	srcErr error

	in       []byte
	inStart  int
	inEnd    int
	out      []byte
	outStart int
	outEnd   int

	err error
}

// NewReader returns an io.Reader that decompresses the stream read from
// src. opts may be nil for strict defaults.
func NewReader(src io.Reader, opts *DecompressorOptions) *Reader {
	return &Reader{
		dec: NewDecompressor(opts),
		src: src,
		in:  make([]byte, 512),
		out: make([]byte, 1024),
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for r.outStart == r.outEnd {
		if r.err != nil {
			return 0, r.err
		}
		if err := r.fill(); err != nil {
			r.err = err
		}
	}

	n := copy(p, r.out[r.outStart:r.outEnd])
	r.outStart += n
	return n, nil
}

// fill decodes one more batch into the out buffer, refilling the
// compressed buffer from the underlying reader as needed.
func (r *Reader) fill() error {
	r.outStart, r.outEnd = 0, 0

	for r.outEnd == 0 {
		// A run still waiting for output space drains without more input.
		if r.inStart == r.inEnd && r.dec.pending != pendingRunFill {
			if r.srcErr != nil {
				if r.srcErr == io.EOF && r.dec.midSequence() {
					return io.ErrUnexpectedEOF
				}
				return r.srcErr
			}
			n, err := r.src.Read(r.in)
			r.inStart, r.inEnd = 0, n
			if err != nil {
				r.srcErr = err
			}
			if n == 0 {
				continue
			}
		}

		res, err := r.dec.Decompress(r.in[r.inStart:r.inEnd], r.out)
		r.inStart += res.NInput
		r.outEnd = res.NOutput
		if err != nil {
			return err
		}
		if res.EOF {
			return io.EOF
		}
	}

	return nil
}
