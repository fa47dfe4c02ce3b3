package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	randv2 "math/rand/v2"
	"runtime"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/mnightingale/base122"
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// BenchmarkCommand measures encode/decode performance and compares output
// density against Base64 and Base91 across payloads of different character.
type BenchmarkCommand struct {
	Iterations int `short:"n" long:"iterations" default:"32" description:"Encode/decode iterations per throughput worker"`
}

func (c *BenchmarkCommand) Execute(args []string) error {
	fmt.Println("=== Base122 Performance Benchmark ===")
	fmt.Println()

	c.densityTable()
	fmt.Println()

	if err := c.throughput(); err != nil {
		return err
	}
	fmt.Println()

	c.dangerousSweep()
	return nil
}

// densityTable reports encoded sizes for mixed-content payloads, next to
// what Base64 and Base91 produce for the same input.
func (c *BenchmarkCommand) densityTable() {
	fmt.Printf("%8s %10s %8s %10s %10s %10s\n",
		"size", "base122", "ratio", "efficiency", "vs base64", "vs base91")

	for _, size := range []int{10, 100, 1000, 10000, 100000} {
		data := mixedPayload(size)

		encoded := base122.Encode(data)
		b64 := base64.StdEncoding.EncodeToString(data)
		b91 := base91.StdEncoding.EncodeToString(data)

		ratio := float64(len(encoded)) / float64(size)
		efficiency := 100 * float64(size) / float64(len(encoded))
		vs64 := 100 * float64(len(b64)-len(encoded)) / float64(len(b64))
		vs91 := 100 * float64(len(b91)-len(encoded)) / float64(len(b91))

		fmt.Printf("%8d %10d %8.3f %9.1f%% %9.1f%% %9.1f%%\n",
			size, len(encoded), ratio, efficiency, vs64, vs91)
	}
}

// throughput times encode and decode over three payload characters: already
// compressed data (the typical data-URI case), plain text, and uniformly
// random bytes. Workers run in parallel, one per CPU.
func (c *BenchmarkCommand) throughput() error {
	text := bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 1<<20/45+1)[:1<<20]

	compressed, err := deflate(text)
	if err != nil {
		return err
	}

	random := make([]byte, 1<<20)
	if _, err := randv2.NewChaCha8([32]byte(bytes.Repeat([]byte{0xBA, 0xAD, 0xF0, 0x0D}, 8))).Read(random); err != nil {
		return errors.WithStack(err)
	}

	payloads := []struct {
		name string
		data []byte
	}{
		{"text", text},
		{"deflate", compressed},
		{"random", random},
	}

	workers := runtime.GOMAXPROCS(0)
	fmt.Printf("Throughput (%d workers, %d iterations each):\n", workers, c.Iterations)

	for _, p := range payloads {
		encodeRate, decodeRate, err := c.measure(p.data, workers)
		if err != nil {
			return err
		}
		fmt.Printf("%8s (%7d bytes): encode %7.1f MB/s, decode %7.1f MB/s\n",
			p.name, len(p.data), encodeRate, decodeRate)
	}

	return nil
}

// measure returns aggregate encode and decode rates in MB/s for data.
func (c *BenchmarkCommand) measure(data []byte, workers int) (encodeRate, decodeRate float64, err error) {
	encoded := base122.Encode(data)
	total := float64(workers*c.Iterations*len(data)) / 1e6

	start := time.Now()
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for i := 0; i < c.Iterations; i++ {
				_ = base122.Encode(data)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, 0, err
	}
	encodeRate = total / time.Since(start).Seconds()

	start = time.Now()
	var dg errgroup.Group
	for w := 0; w < workers; w++ {
		dg.Go(func() error {
			for i := 0; i < c.Iterations; i++ {
				if _, err := base122.Decode(encoded); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := dg.Wait(); err != nil {
		return 0, 0, err
	}
	decodeRate = total / time.Since(start).Seconds()

	return encodeRate, decodeRate, nil
}

// dangerousSweep shows how escape density erodes efficiency.
func (c *BenchmarkCommand) dangerousSweep() {
	fmt.Println("Dangerous character density sweep:")

	dangerous := []byte{0x00, 0x0A, 0x0D, 0x22, 0x26, 0x5C}
	for _, density := range []float64{0, 0.1, 0.2, 0.5} {
		data := make([]byte, 1000)
		for i := range data {
			if float64(i)/float64(len(data)) < density {
				data[i] = dangerous[i%len(dangerous)]
			} else {
				data[i] = byte((i * 7) % 256)
			}
		}

		encoded := base122.Encode(data)
		efficiency := 100 * float64(len(data)) / float64(len(encoded))
		fmt.Printf("  density %3.0f%%: efficiency %.1f%%\n", density*100, efficiency)
	}
}

// mixedPayload generates deterministic mixed-content test data.
func mixedPayload(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte((i*37 + i*i) % 256)
	}
	return data
}

// deflate compresses data at the highest flate level.
func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := w.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	return buf.Bytes(), nil
}
