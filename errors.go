// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

package microcomp

import "errors"

// Sentinel errors for decompression.
var (
	// ErrReservedByte is returned when byte 0xFF appears at a code position
	// and the decoder was not configured to treat it as an EOF sentinel.
	ErrReservedByte = errors.New("reserved byte 0xFF in stream")
	// ErrEmptySlot is returned when a table code references a slot that has
	// never held a pair; a synchronized encoder cannot produce such a code.
	ErrEmptySlot = errors.New("table code references empty slot")
	// ErrTruncated is returned by the one-shot Decompress when the stream
	// ends in the middle of a two-byte sequence.
	ErrTruncated = errors.New("truncated stream")
	// ErrOutputTooLarge is returned when decompressed output exceeds
	// DecompressorOptions.MaxOutputSize.
	ErrOutputTooLarge = errors.New("output exceeds MaxOutputSize")
)
