// vbodump prints the contents of a vertex buffer written by vbogen.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/Faultbox/vbogen/pkg/vbo"
)

func main() {
	fs := flag.NewFlagSet("vbodump", flag.ExitOnError)
	order := fs.String("order", "", "Field order the buffer was written with (required)")
	byteOrder := fs.String("byte-order", "little", "Byte order: little, big or native")
	limit := fs.Int("n", 0, "Print at most N vertices (0 = all)")
	summary := fs.Bool("summary", false, "Print per-field min/max only")
	fs.Usage = printUsage
	fs.Parse(os.Args[1:])

	if fs.NArg() < 1 || *order == "" {
		printUsage()
		os.Exit(1)
	}

	fields := vbo.ParseOrder(*order)
	if len(fields) == 0 {
		fmt.Fprintln(os.Stderr, "Error: empty field order")
		os.Exit(1)
	}
	bo, err := vbo.ParseByteOrder(*byteOrder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := vbo.ReadBuffer(f, bo)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}

	if len(data)%len(fields) != 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d floats is not a multiple of stride %d\n", len(data), len(fields))
	}

	if *summary {
		printSummary(os.Stdout, data, fields)
		return
	}
	printVertices(os.Stdout, data, fields, *limit)
}

func printUsage() {
	fmt.Println(`vbodump - print an interleaved vertex buffer

Usage:
  vbodump -order "<fields>" [options] <file.vbo>

Options:
  -order       field order used when converting (required)
  -byte-order  little (default), big or native
  -n           print at most N vertices
  -summary     print vertex/triangle counts and per-field ranges

Examples:
  vbodump -order "vx vy vz nx ny nz tu tv" model.vbo
  vbodump -order "vx,vy,vz" -summary model.vbo`)
}

func printVertices(w io.Writer, data []float32, fields []vbo.Field, limit int) {
	stride := len(fields)

	header := make([]string, stride)
	for i, f := range fields {
		header[i] = fmt.Sprintf("%10s", f)
	}
	fmt.Fprintf(w, "%6s %s\n", "#", strings.Join(header, " "))

	for v := 0; (v+1)*stride <= len(data); v++ {
		if limit > 0 && v >= limit {
			break
		}
		if v > 0 && v%3 == 0 {
			fmt.Fprintln(w)
		}
		row := make([]string, stride)
		for i, x := range data[v*stride : (v+1)*stride] {
			row[i] = fmt.Sprintf("%10.4f", x)
		}
		fmt.Fprintf(w, "%6d %s\n", v, strings.Join(row, " "))
	}
}

func printSummary(w io.Writer, data []float32, fields []vbo.Field) {
	stride := len(fields)
	vertices := len(data) / stride

	fmt.Fprintf(w, "Floats:    %d\n", len(data))
	fmt.Fprintf(w, "Vertices:  %d\n", vertices)
	fmt.Fprintf(w, "Triangles: %d\n", vertices/3)
	fmt.Fprintf(w, "Stride:    %d bytes\n", stride*4)
	if vertices == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Field ranges:")
	for i, f := range fields {
		lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
		for v := 0; v < vertices; v++ {
			x := data[v*stride+i]
			lo = min(lo, x)
			hi = max(hi, x)
		}
		fmt.Fprintf(w, "  %-3s %-9s [%g, %g]\n", f, f.Kind(), lo, hi)
	}
}
