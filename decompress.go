// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

package microcomp

// Decoder expansion states. A marker is consumed the moment it is
// classified; the pending fields then carry the unfinished expansion
// across calls when the input chunk ends inside a two-byte sequence or the
// output fills mid-run.
const (
	pendingNone     = iota
	pendingRunValue // run marker consumed, value byte not read yet
	pendingRunFill  // run value known, pendingLen bytes left to emit
	pendingLiteral  // escape consumed, next input byte passes through raw
)

// Decompressor is the streaming decoder. It mirrors the Compressor's pair
// table from the decoded byte stream and carries partial expansions across
// calls, so input and output may be chunked arbitrarily; runs longer than
// the output buffer resume on the next call.
//
// After a decode error the instance is poisoned and every further call
// returns the same error; discard it. A Decompressor serves exactly one
// logical stream.
type Decompressor struct {
	table pairTable

	detectEOF bool

	pending      int
	pendingLen   int
	pendingValue byte

	eof bool
	err error
}

// NewDecompressor returns a Decompressor. opts may be nil for strict
// defaults.
func NewDecompressor(opts *DecompressorOptions) *Decompressor {
	if opts == nil {
		opts = DefaultDecompressorOptions()
	}
	return &Decompressor{table: newPairTable(), detectEOF: opts.DetectEOF}
}

// Decompress consumes a prefix of in, writes a prefix of out and returns
// both counts. A short return means the output filled or the input ended
// mid-sequence; call again with the unconsumed input and fresh output.
// The table is updated exactly when a byte is emitted, never earlier, so
// suspension at any boundary keeps both sides synchronized.
func (d *Decompressor) Decompress(in, out []byte) (Result, error) {
	if d.err != nil {
		return Result{}, d.err
	}
	if d.eof {
		return Result{EOF: true}, nil
	}

	var ip, op int

	for {
		// Drain whatever expansion the previous iteration (or call) left
		// unfinished before classifying the next byte.
		switch d.pending {
		case pendingRunValue:
			if ip >= len(in) {
				return Result{NInput: ip, NOutput: op}, nil
			}
			d.pendingValue = in[ip]
			ip++
			d.pending = pendingRunFill
			continue

		case pendingRunFill:
			n := min(d.pendingLen, len(out)-op)
			for i := 0; i < n; i++ {
				out[op+i] = d.pendingValue
			}
			op += n
			d.pendingLen -= n
			if d.pendingLen > 0 {
				return Result{NInput: ip, NOutput: op}, nil
			}
			d.pending = pendingNone
			continue

		case pendingLiteral:
			if ip >= len(in) || op >= len(out) {
				return Result{NInput: ip, NOutput: op}, nil
			}
			// Raw payload position: even 0xFF passes through here.
			out[op] = in[ip]
			op++
			ip++
			d.pending = pendingNone
			continue
		}

		if ip >= len(in) {
			break
		}

		switch b := in[ip]; {
		case b <= markerRLEMax:
			ip++
			d.pending = pendingRunValue
			d.pendingLen = int(b) + rleMinLength

		case b <= directMax:
			if op >= len(out) {
				return Result{NInput: ip, NOutput: op}, nil
			}
			out[op] = b
			op++
			ip++
			d.table.push(b)

		case b == markerEscape:
			ip++
			d.pending = pendingLiteral

		case b <= codeMax:
			if op+2 > len(out) {
				return Result{NInput: ip, NOutput: op}, nil
			}
			x, y, ok := d.table.get(int(b) - codeBase)
			if !ok {
				d.err = ErrEmptySlot
				return Result{NInput: ip, NOutput: op}, d.err
			}
			out[op] = x
			out[op+1] = y
			op += 2
			ip++
			d.table.push(x)
			d.table.push(y)

		default: // byteReserved
			if d.detectEOF {
				ip++
				d.eof = true
				return Result{NInput: ip, NOutput: op, EOF: true}, nil
			}
			d.err = ErrReservedByte
			return Result{NInput: ip, NOutput: op}, d.err
		}
	}

	return Result{NInput: ip, NOutput: op}, nil
}

// Utilization reports how many table slots hold a live pair and the sum of
// their hit counts. Diagnostic only.
func (d *Decompressor) Utilization() (used, total int) {
	return d.table.utilization()
}

// midSequence reports whether the decoder is waiting for more input to
// finish a marker it already consumed.
func (d *Decompressor) midSequence() bool {
	return d.pending == pendingRunValue || d.pending == pendingLiteral
}

// Decompress decompresses src in one shot, growing the output as needed.
// opts may be nil. Returns ErrTruncated when the stream ends inside a
// two-byte sequence.
func Decompress(src []byte, opts *DecompressorOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressorOptions()
	}

	d := NewDecompressor(opts)
	buf := make([]byte, 4096)
	var out []byte
	var ip int

	// Keep calling after the input is consumed while a run is still
	// waiting for output space.
	for ip < len(src) || d.pending == pendingRunFill {
		r, err := d.Decompress(src[ip:], buf)
		out = append(out, buf[:r.NOutput]...)
		ip += r.NInput
		if err != nil {
			return nil, err
		}
		if opts.MaxOutputSize > 0 && len(out) > opts.MaxOutputSize {
			return nil, ErrOutputTooLarge
		}
		if r.EOF {
			break
		}
	}

	if d.midSequence() {
		return nil, ErrTruncated
	}
	return out, nil
}
