// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

/*
Package microcomp implements a streaming byte-level compression codec for
constrained targets (microcontrollers, log capture on small devices).

The format substitutes recently co-occurring byte pairs with single-byte
codes drawn from a 127-entry adaptive table, run-length encodes repeats of
3–11 bytes, and escapes every byte outside 9–126. Encoder and
decoder rebuild the same table deterministically from the decoded byte
stream, so no dictionary is ever transmitted. Working memory is a fixed few
hundred bytes per instance and no allocation happens inside the codec.

It is tuned for predominantly ASCII/UTF-8 payloads such as log files.
Binary data still round-trips but pays a two-byte escape per high-bit byte.

# Streaming

Both sides operate on caller-supplied buffers and can be suspended and
resumed at any boundary. Each call consumes a prefix of the input, fills a
prefix of the output, and reports both counts; the caller loops:

	c := microcomp.NewCompressor()
	for len(src) > 0 {
		r := c.Compress(src, buf)
		sink(buf[:r.NOutput])
		src = src[r.NInput:]
	}

Output buffers may be as small as 2 bytes. A 12-byte output buffer
guarantees that every call makes progress on any valid stream.

# One-shot and io front-ends

For whole buffers use Compress and Decompress:

	comp := microcomp.Compress(data)
	back, err := microcomp.Decompress(comp, nil)

For io plumbing, Writer compresses into an io.Writer and Reader
decompresses from an io.Reader.

# End-of-stream sentinel

The encoder never places byte 0xFF at a code position, so storage layers
that erase to 0xFF (flash) can use it as a terminator. A Decompressor built
with DetectEOF stops cleanly when it classifies a 0xFF byte.
*/
package microcomp
