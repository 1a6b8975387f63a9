package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/vbogen/internal/config"
	"github.com/Faultbox/vbogen/pkg/vbo"
)

const triangleOBJ = "v 1 0 0\nv 0 1 0\nv 0 0 1\nvn 0 0 2\nf 1//1 2//1 3//1\n"

func writeOBJ(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "model.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write obj: %v", err)
	}
	return path
}

func readOutput(t *testing.T, path string, order binary.ByteOrder) []float32 {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()
	data, err := vbo.ReadBuffer(f, order)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return data
}

func TestRun_FromConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Convert.Input = writeOBJ(t, dir, triangleOBJ)
	cfg.Convert.Output = filepath.Join(dir, "out.vbo")
	cfg.Convert.Order = "vx vy vz nz"

	var prompts bytes.Buffer
	if err := run(cfg, strings.NewReader(""), &prompts); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if prompts.Len() != 0 {
		t.Errorf("unexpected prompts: %q", prompts.String())
	}

	got := readOutput(t, cfg.Convert.Output, binary.LittleEndian)
	want := []float32{1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRun_Prompts(t *testing.T) {
	dir := t.TempDir()
	objPath := writeOBJ(t, dir, triangleOBJ)

	cfg := config.Default()
	cfg.Convert.Output = filepath.Join(dir, "out.vbo")
	cfg.Convert.ByteOrder = "big"

	var prompts bytes.Buffer
	stdin := strings.NewReader(objPath + "\r\n" + "vx *\n")
	if err := run(cfg, stdin, &prompts); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(prompts.String(), "enter obj file name") {
		t.Errorf("missing path prompt in %q", prompts.String())
	}
	if !strings.Contains(prompts.String(), "select output data order") {
		t.Errorf("missing order prompt in %q", prompts.String())
	}

	got := readOutput(t, cfg.Convert.Output, binary.BigEndian)
	want := []float32{1, 0, 0, 0, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		obj     string
		order   string
		mutate  func(*config.Config)
		wantErr error
	}{
		{
			name:    "missing normal index",
			obj:     "v 0 0 0\nvn 0 0 1\nf 1 1 1\n",
			order:   "vx nx",
			wantErr: vbo.ErrMissingIndex,
		},
		{
			name:    "bad byte order",
			obj:     triangleOBJ,
			order:   "vx",
			mutate:  func(c *config.Config) { c.Convert.ByteOrder = "pdp" },
			wantErr: vbo.ErrUnknownByteOrder,
		},
		{
			name:    "missing source",
			order:   "vx",
			mutate:  func(c *config.Config) { c.Convert.Input = "/nonexistent/model.obj" },
			wantErr: vbo.ErrSourceAccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := config.Default()
			cfg.Convert.Input = writeOBJ(t, dir, tt.obj)
			cfg.Convert.Output = filepath.Join(dir, "out.vbo")
			cfg.Convert.Order = tt.order
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			err := run(cfg, strings.NewReader(""), &bytes.Buffer{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if _, statErr := os.Stat(cfg.Convert.Output); statErr == nil {
				t.Error("output written despite failure")
			}
		})
	}
}

func TestRun_EmptyOrder(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Convert.Input = writeOBJ(t, dir, triangleOBJ)

	err := run(cfg, strings.NewReader(" , \n"), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "field order is empty") {
		t.Errorf("expected empty order error, got %v", err)
	}
}

func TestRun_PromptEOF(t *testing.T) {
	cfg := config.Default()
	if err := run(cfg, strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Error("expected error when stdin closes before an answer")
	}
}

func TestPrintFields(t *testing.T) {
	var buf bytes.Buffer
	printFields(&buf)
	for _, f := range vbo.Fields {
		if !strings.Contains(buf.String(), f.String()) {
			t.Errorf("token %s missing from field listing", f)
		}
	}
}
