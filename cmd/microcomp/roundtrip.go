// SPDX-License-Identifier: MIT
// Source: github.com/leethomason/microcomp

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"

	"github.com/leethomason/microcomp"
)

// report holds the outcome of one file's round trip.
type report struct {
	name       string
	inputSize  int
	compressed int

	encUsed, encTotal int
	decUsed, decTotal int
}

// processFile reads name fully, compresses and decompresses it through the
// chunked interface with MCU-sized working buffers, and verifies the round
// trip byte for byte.
func processFile(name string, bufSize int) (*report, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	comp, enc := compressChunked(data, bufSize)

	// Decompress with half the compress buffer size, but at least 12 bytes,
	// so at the default size the two sides do not run in lockstep.
	decBufSize := max(bufSize/2, 12)
	decoded, dec, err := decompressChunked(comp, decBufSize)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(decoded, data) {
		offset, line := firstMismatch(decoded, data)
		color.Red("%s: decompressed data does not match original", name)
		return nil, fmt.Errorf("first mismatch at byte %d line %d", offset, line)
	}

	rep := &report{
		name:       name,
		inputSize:  len(data),
		compressed: len(comp),
	}
	rep.encUsed, rep.encTotal = enc.Utilization()
	rep.decUsed, rep.decTotal = dec.Utilization()

	logrus.WithFields(logrus.Fields{
		"file":       name,
		"input":      len(data),
		"compressed": len(comp),
	}).Debug("round trip verified")

	return rep, nil
}

func compressChunked(data []byte, bufSize int) ([]byte, *microcomp.Compressor) {
	c := microcomp.NewCompressor()
	buf := make([]byte, bufSize)
	comp := make([]byte, 0, len(data))

	rest := data
	for len(rest) > 0 {
		r := c.Compress(rest, buf)
		comp = append(comp, buf[:r.NOutput]...)
		rest = rest[r.NInput:]
	}
	return comp, c
}

func decompressChunked(comp []byte, bufSize int) ([]byte, *microcomp.Decompressor, error) {
	d := microcomp.NewDecompressor(nil)
	buf := make([]byte, bufSize)
	out := make([]byte, 0, 2*len(comp))

	ip := 0
	for {
		r, err := d.Decompress(comp[ip:], buf)
		if err != nil {
			return nil, nil, err
		}
		ip += r.NInput
		out = append(out, buf[:r.NOutput]...)
		if ip == len(comp) && r.NInput == 0 && r.NOutput == 0 {
			return out, d, nil
		}
	}
}

// firstMismatch reports the byte offset of the first difference and the
// 0-based line number it falls on in the original data.
func firstMismatch(got, want []byte) (offset, line int) {
	n := min(len(got), len(want))
	for offset < n && got[offset] == want[offset] {
		if want[offset] == '\n' {
			line++
		}
		offset++
	}
	return offset, line
}

func (r *report) print(stats bool) {
	ratio := 0.0
	if r.inputSize > 0 {
		ratio = 100 * float64(r.compressed) / float64(r.inputSize)
	}

	fmt.Printf("%s: %s -> %s (%.1f%%) %s\n",
		r.name,
		humanize.Bytes(uint64(r.inputSize)),
		humanize.Bytes(uint64(r.compressed)),
		ratio,
		color.GreenString("verified"))

	if !stats {
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Side", "Slots used", "Sum of counts"})
	table.Append([]string{"encoder", fmt.Sprint(r.encUsed), fmt.Sprint(r.encTotal)})
	table.Append([]string{"decoder", fmt.Sprint(r.decUsed), fmt.Sprint(r.decTotal)})
	table.Render()
}
