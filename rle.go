// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

package microcomp

// runLength returns the length of the run of identical bytes at the head
// of in, capped at rleMaxLength.
func runLength(in []byte) int {
	if len(in) == 0 {
		return 0
	}

	v := in[0]
	n := 1
	for n < len(in) && n < rleMaxLength && in[n] == v {
		n++
	}
	return n
}

// writeRun emits the two-byte marker/value encoding of a run of n
// identical bytes v into out. The caller has verified n is within the run
// bounds and out holds at least 2 bytes.
//
// Runs work for any byte value and never touch the pair table: replaying
// per-byte table updates for a run would cost the decoder more than the
// pairs are worth, and the table stays focused on mixed text.
func writeRun(out []byte, n int, v byte) {
	out[0] = byte(n - rleMinLength)
	out[1] = v
}
