package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/vbogen/pkg/vbo"
)

func TestPrintVertices(t *testing.T) {
	fields := vbo.ParseOrder("vx vy")
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}

	var buf bytes.Buffer
	printVertices(&buf, data, fields, 0)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// header, 3 vertices, blank separator, 1 vertex
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "vx") || !strings.Contains(lines[0], "vy") {
		t.Errorf("header missing field names: %q", lines[0])
	}
	if !strings.Contains(lines[1], "1.0000") || !strings.Contains(lines[1], "2.0000") {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if lines[4] != "" {
		t.Errorf("expected triangle separator, got %q", lines[4])
	}
}

func TestPrintVertices_Limit(t *testing.T) {
	fields := vbo.ParseOrder("vx")
	var buf bytes.Buffer
	printVertices(&buf, []float32{1, 2, 3, 4, 5}, fields, 2)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header plus 2 rows, got %d lines", len(lines))
	}
}

func TestPrintSummary(t *testing.T) {
	fields := vbo.ParseOrder("vx nz")
	data := []float32{-1, 0, 2, 1, 0.5, 0}

	var buf bytes.Buffer
	printSummary(&buf, data, fields)
	out := buf.String()

	for _, want := range []string{
		"Vertices:  3",
		"Triangles: 1",
		"Stride:    8 bytes",
		"[-1, 2]",
		"[0, 1]",
		"position",
		"normal",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
