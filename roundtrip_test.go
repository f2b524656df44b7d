package microcomp

import (
	"bytes"
	"fmt"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, microcomp test")},
		{name: "tabs-and-newlines", data: []byte("key:\tvalue\nkey:\tvalue\n")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 1200)},
		{name: "space-run", data: bytes.Repeat([]byte{' '}, 500)},
		{name: "control-bytes", data: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 127, 0, 8}},
		{name: "synthetic-log", data: testCorpusText(16 << 10)},
		{name: "mixed-binary", data: testCorpusMixed(4 << 10)},
	}
}

// testCorpusText generates n bytes of deterministic log-like text built
// entirely from direct bytes (printable ASCII, tab, newline).
func testCorpusText(n int) []byte {
	levels := []string{"INFO", "WARN", "DEBUG", "ERROR"}
	var buf bytes.Buffer
	for i := 0; buf.Len() < n; i++ {
		fmt.Fprintf(&buf, "2026-07-%02d 12:%02d:%02d %s\tsensor=%d temp=%d.%d msg=\"tick tick tick\"\n",
			1+i%28, i%60, (i*7)%60, levels[i%len(levels)], i%16, 20+i%9, i%10)
	}
	return buf.Bytes()[:n]
}

// testCorpusMixed interleaves text with binary stretches, runs, and the
// reserved byte so every code path is crossed.
func testCorpusMixed(n int) []byte {
	var buf bytes.Buffer
	for i := 0; buf.Len() < n; i++ {
		switch i % 4 {
		case 0:
			fmt.Fprintf(&buf, "frame %04d ", i)
		case 1:
			buf.Write([]byte{byte(i), byte(i * 7), 0xFF, 0x80, byte(i % 9)})
		case 2:
			buf.Write(bytes.Repeat([]byte{byte(i)}, 3+i%12))
		default:
			buf.WriteString("=== end of frame ===\n")
		}
	}
	return buf.Bytes()[:n]
}

// encodeChunked compresses src draining output into chunks of outChunk
// bytes.
func encodeChunked(t *testing.T, src []byte, outChunk int) []byte {
	t.Helper()
	c := NewCompressor()
	buf := make([]byte, outChunk)
	var comp []byte
	rest := src
	for len(rest) > 0 {
		r := c.Compress(rest, buf)
		if r.NInput == 0 && r.NOutput == 0 {
			t.Fatalf("encoder stalled with %d input bytes, %d-byte output", len(rest), outChunk)
		}
		comp = append(comp, buf[:r.NOutput]...)
		rest = rest[r.NInput:]
	}
	return comp
}

// decodeChunked decompresses comp feeding input in inChunk slices and
// draining output into outChunk buffers.
func decodeChunked(t *testing.T, comp []byte, inChunk, outChunk int) []byte {
	t.Helper()
	d := NewDecompressor(nil)
	buf := make([]byte, outChunk)
	var out []byte
	ip := 0
	for {
		end := min(ip+inChunk, len(comp))
		r, err := d.Decompress(comp[ip:end], buf)
		if err != nil {
			t.Fatalf("Decompress failed at offset %d: %v", ip, err)
		}
		ip += r.NInput
		out = append(out, buf[:r.NOutput]...)
		if ip == len(comp) && r.NInput == 0 && r.NOutput == 0 {
			break
		}
	}
	return out
}

func TestRoundTrip_FortyByteBuffers(t *testing.T) {
	src := testCorpusText(32 << 10)
	comp := encodeChunked(t, src, 40)
	out := decodeChunked(t, comp, 40, 40)
	if !bytes.Equal(out, src) {
		t.Fatalf("round-trip mismatch at offset %d", firstDiff(out, src))
	}
}

func TestRoundTrip_ChunkScheduleGrid(t *testing.T) {
	src := testCorpusMixed(8 << 10)
	reference := Compress(src)

	for in := 16; in <= 37; in += 3 {
		for out := 16; out <= 36; out += 4 {
			name := fmt.Sprintf("in-%d/out-%d", in, out)
			t.Run(name, func(t *testing.T) {
				comp := encodeChunked(t, src, in)
				if !bytes.Equal(comp, reference) {
					t.Fatal("compressed bytes depend on encoder output schedule")
				}
				decoded := decodeChunked(t, comp, in, out)
				if !bytes.Equal(decoded, src) {
					t.Fatalf("mismatch at offset %d", firstDiff(decoded, src))
				}
			})
		}
	}
}

func TestRoundTrip_TinyBuffers(t *testing.T) {
	src := testCorpusMixed(2 << 10)
	for _, size := range []int{2, 3, 5, 7} {
		t.Run(fmt.Sprintf("size-%d", size), func(t *testing.T) {
			comp := encodeChunked(t, src, size)
			decoded := decodeChunked(t, comp, size, size)
			if !bytes.Equal(decoded, src) {
				t.Fatalf("mismatch at offset %d", firstDiff(decoded, src))
			}
		})
	}
}

func TestRoundTrip_TableSynchrony(t *testing.T) {
	src := testCorpusText(8 << 10)

	c := NewCompressor()
	d := NewDecompressor(nil)
	cbuf := make([]byte, 64)
	dbuf := make([]byte, 64)
	var decoded []byte

	rest := src
	for len(rest) > 0 {
		r := c.Compress(rest, cbuf)
		rest = rest[r.NInput:]

		comp := cbuf[:r.NOutput]
		for len(comp) > 0 {
			dr, err := d.Decompress(comp, dbuf)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			comp = comp[dr.NInput:]
			decoded = append(decoded, dbuf[:dr.NOutput]...)
		}

		// Whenever both sides have processed the same decoded prefix their
		// tables must be bit-identical.
		if c.table != d.table {
			t.Fatalf("tables diverged after %d decoded bytes", len(decoded))
		}
	}

	if !bytes.Equal(decoded, src) {
		t.Fatalf("mismatch at offset %d", firstDiff(decoded, src))
	}
}

func TestRoundTrip_ProgressWithTwelveByteOutput(t *testing.T) {
	src := testCorpusMixed(2 << 10)
	comp := encodeChunked(t, src, 12)

	d := NewDecompressor(nil)
	buf := make([]byte, 12)
	var out []byte
	ip := 0
	for {
		r, err := d.Decompress(comp[ip:], buf)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if ip < len(comp) && r.NInput == 0 && r.NOutput == 0 {
			t.Fatalf("no progress with 12-byte output at offset %d", ip)
		}
		ip += r.NInput
		out = append(out, buf[:r.NOutput]...)
		if ip == len(comp) && r.NInput == 0 && r.NOutput == 0 {
			break
		}
	}

	if !bytes.Equal(out, src) {
		t.Fatalf("mismatch at offset %d", firstDiff(out, src))
	}
}

func firstDiff(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
