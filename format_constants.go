// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

package microcomp

// Byte-code space partition. Every byte of a compressed stream is
// classified into one of these regions; the boundaries are the wire format.
const (
	markerRLEMax = 8   // 0..8: run-length markers, run = marker + rleMinLength
	directMin    = 9   // 9..126: emitted verbatim, table-eligible
	directMax    = 126
	markerEscape = 127 // next byte is a raw literal
	codeBase     = 128 // 128..254: byte-pair table codes
	codeMax      = 254
	byteReserved = 255 // never at a code position; external EOF sentinel
)

// Run-length bounds and the table size derived from the partition.
const (
	rleMinLength = 3
	rleMaxLength = markerRLEMax + rleMinLength
	tableSize    = codeMax - codeBase + 1
)

// Pair hash multipliers. Part of the wire contract: encoder and decoder
// must map a pair to the same slot or their tables diverge.
const (
	hashMulA = 36
	hashMulB = 227
)

// isDirect reports whether b travels verbatim and participates in the
// pair table. Bytes 0..8 collide with run markers and 127 with the escape
// prefix, so all of them go through the escape path instead.
func isDirect(b byte) bool {
	return b >= directMin && b <= directMax
}
