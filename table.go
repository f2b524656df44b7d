// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

package microcomp

import "math"

// pairEntry is one byte-pair slot. count == 0 marks a slot that has never
// been installed or has fully aged out and may be overwritten.
type pairEntry struct {
	a, b  byte
	count uint16
}

func (e *pairEntry) match(a, b byte) bool {
	return e.a == a && e.b == b
}

// pairTable is the adaptive byte-pair table. Encoder and decoder each own
// one instance and mutate it only from the decoded byte stream, so both
// sides rebuild identical tables without ever transmitting them.
type pairTable struct {
	entries [tableSize]pairEntry
	prev    byte
	tick    int
}

// newPairTable seeds prev with a space so the first pushed byte forms a
// space-prefixed pair, the most common pair shape in text.
func newPairTable() pairTable {
	return pairTable{prev: ' '}
}

func pairHash(a, b byte) int {
	return (int(a)*hashMulA + int(b)*hashMulB) % tableSize
}

// push records x as the right half of the pair (prev, x). One slot is aged
// down per push, rolling through the table, so pairs that stop occurring
// drain to zero and free their slot without any auxiliary bookkeeping.
// x must be a direct byte; markers, the escape prefix, and high-bit bytes
// never enter the table.
func (t *pairTable) push(x byte) {
	t.tick++
	if age := &t.entries[t.tick%tableSize]; age.count > 0 {
		age.count--
	}

	e := &t.entries[pairHash(t.prev, x)]
	switch {
	case e.count == 0:
		*e = pairEntry{a: t.prev, b: x, count: 1}
	case e.match(t.prev, x):
		if e.count < math.MaxUint16 {
			e.count++
		}
	}
	// A live slot holding a different pair is left alone.
	t.prev = x
}

// fetch returns the slot index for (a, b), or -1 when the slot holds a
// different pair. The count is deliberately not consulted: a slot that has
// aged to zero still decodes correctly as long as its pair bytes survive,
// and both sides see the same count at the same stream position.
func (t *pairTable) fetch(a, b byte) int {
	i := pairHash(a, b)
	if t.entries[i].match(a, b) {
		return i
	}
	return -1
}

// get returns the pair stored at idx. ok is false only when the slot has
// never held a pair; a synchronized encoder cannot emit a code for such a
// slot, so the caller treats that as stream corruption.
func (t *pairTable) get(idx int) (a, b byte, ok bool) {
	e := &t.entries[idx]
	if e.count == 0 && e.a == 0 && e.b == 0 {
		return 0, 0, false
	}
	return e.a, e.b, true
}

func (t *pairTable) slotCount(idx int) int {
	return int(t.entries[idx].count)
}

// utilization reports how many slots currently hold a live pair and the
// sum of their counts.
func (t *pairTable) utilization() (used, total int) {
	for i := range t.entries {
		if c := int(t.entries[i].count); c > 0 {
			used++
			total += c
		}
	}
	return used, total
}
