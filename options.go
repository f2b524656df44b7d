// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

package microcomp

// DecompressorOptions configures a Decompressor. A nil options pointer
// selects the defaults: strict mode, no output limit.
type DecompressorOptions struct {
	// DetectEOF makes the decoder treat byte 0xFF at a code position as an
	// externally appended end-of-stream sentinel instead of corruption.
	// Storage layers that erase to 0xFF (flash) rely on this to terminate
	// streams without a length prefix.
	DetectEOF bool
	// MaxOutputSize limits how many bytes the one-shot Decompress may
	// produce (0 = no limit). The streaming interface is unaffected: there
	// the caller already bounds output per call.
	MaxOutputSize int
}

// DefaultDecompressorOptions returns strict-mode options with no limits.
func DefaultDecompressorOptions() *DecompressorOptions {
	return &DecompressorOptions{}
}
