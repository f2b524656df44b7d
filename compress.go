// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

package microcomp

// Result reports how much of each buffer a single streaming call used.
// EOF is set by a Decompressor that stopped at an end-of-stream sentinel
// (see DecompressorOptions.DetectEOF); a Compressor never sets it.
type Result struct {
	NInput  int
	NOutput int
	EOF     bool
}

// Compressor is the streaming encoder. Successive Compress calls decode to
// the same bytes as one call over the concatenated input, so callers can
// feed data in arbitrary chunks and drain output into buffers as small as
// 2 bytes. How output is chunked never changes the compressed bytes; an
// input boundary inside a pair or a run can.
// A Compressor serves exactly one logical stream; create a new one per
// stream and do not share instances across goroutines.
type Compressor struct {
	table pairTable
}

// NewCompressor returns a Compressor with an empty pair table.
func NewCompressor() *Compressor {
	return &Compressor{table: newPairTable()}
}

// Compress consumes a prefix of in, writes a prefix of out and returns
// both counts. It stops when in is exhausted or the next encoding unit no
// longer fits in out; a short return is not an error, call again with the
// unconsumed input and fresh output space. Output is only ever advanced by
// whole encoding units, so bytes past NOutput are never touched.
func (c *Compressor) Compress(in, out []byte) Result {
	var ip, op int

	for ip < len(in) && op < len(out) {
		// Runs first: cheaper than any pair code and keeps run bytes out
		// of the table. A run that cannot be emitted for lack of output
		// space returns short rather than degrading to literals, so the
		// compressed bytes never depend on how output is chunked.
		if n := runLength(in[ip:]); n >= rleMinLength {
			if op+2 > len(out) {
				break
			}
			writeRun(out[op:], n, in[ip])
			ip += n
			op += 2
			continue
		}

		a := in[ip]
		var b byte
		if ip+1 < len(in) {
			b = in[ip+1]
		}

		if isDirect(a) && isDirect(b) {
			if i := c.table.fetch(a, b); i >= 0 {
				out[op] = byte(codeBase + i)
				op++
				ip += 2
				// Fetch before push: the decoder resolves the code first
				// and pushes after emitting, so pushing here first would
				// desynchronize the tables.
				c.table.push(a)
				c.table.push(b)
				continue
			}
		}

		if !isDirect(a) {
			// Markers, the escape prefix itself, and high-bit bytes travel
			// behind an escape. Not pushed: the table holds direct bytes only.
			if op+2 > len(out) {
				break
			}
			out[op] = markerEscape
			out[op+1] = a
			op += 2
			ip++
			continue
		}

		out[op] = a
		op++
		ip++
		c.table.push(a)
	}

	return Result{NInput: ip, NOutput: op}
}

// Utilization reports how many table slots hold a live pair and the sum of
// their hit counts. Diagnostic only.
func (c *Compressor) Utilization() (used, total int) {
	return c.table.utilization()
}

// Compress compresses src in one shot. The worst case is one escape per
// byte, so output is bounded by twice the input length.
func Compress(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}

	dst := make([]byte, 2*len(src))
	c := NewCompressor()
	var ip, op int
	for ip < len(src) {
		r := c.Compress(src[ip:], dst[op:])
		ip += r.NInput
		op += r.NOutput
	}

	return dst[:op:op]
}
