// vbogen converts OBJ geometry into an interleaved float32 vertex buffer.
//
// Usage:
//
//	vbogen -in model.obj -order "vx vy vz nx ny nz tu tv" -out model.vbo
//
// When -in or -order are missing (and not set in vbogen.yaml) they are
// asked for on stdin.
package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vbogen/internal/config"
	"github.com/Faultbox/vbogen/internal/logger"
	"github.com/Faultbox/vbogen/pkg/encoding"
	"github.com/Faultbox/vbogen/pkg/vbo"
)

func main() {
	config.ParseFlags()

	if config.ListFieldsRequested() {
		printFields(os.Stdout)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg, os.Stdin, os.Stderr)
	if err != nil {
		logFailure(err)
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, in io.Reader, prompt io.Writer) error {
	stdin := bufio.NewReader(in)

	if cfg.Convert.Input == "" {
		path, err := ask(stdin, prompt, "enter obj file name:")
		if err != nil {
			return err
		}
		cfg.Convert.Input = path
	}
	if cfg.Convert.Order == "" {
		order, err := ask(stdin, prompt, "select output data order (example: tu tv tw vx vy * nz *):")
		if err != nil {
			return err
		}
		cfg.Convert.Order = order
	}

	order := vbo.ParseOrder(cfg.Convert.Order)
	if len(order) == 0 {
		return errors.New("field order is empty")
	}
	byteOrder, err := vbo.ParseByteOrder(cfg.Convert.ByteOrder)
	if err != nil {
		return err
	}
	if _, err := encoding.Lookup(cfg.Convert.Encoding); err != nil {
		return err
	}

	logger.Info("converting",
		zap.String("input", cfg.Convert.Input),
		zap.String("order", vbo.FormatOrder(order)),
		zap.String("encoding", cfg.Convert.Encoding))

	start := time.Now()
	src := vbo.DecodedSource{
		Source:  vbo.FileSource(cfg.Convert.Input),
		Charset: cfg.Convert.Encoding,
	}
	res, err := vbo.NewLoader().Load(src, order)
	if err != nil {
		return err
	}

	for _, k := range res.Empty {
		logger.Warn("source has no vectors for a requested attribute; writing zeros",
			zap.Stringer("kind", k))
	}
	logger.Debug("expanded faces",
		zap.Int("triangles", res.Triangles),
		zap.Int("vertices", res.Vertices()),
		zap.Int("stride", res.Stride))

	if err := writeOutput(cfg.Convert.Output, res.Data, byteOrder); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Convert.Output, err)
	}

	logger.Info("done",
		zap.String("output", cfg.Convert.Output),
		zap.Int("triangles", res.Triangles),
		zap.Int("floats", len(res.Data)),
		zap.Int("bytes", len(res.Data)*4),
		zap.Duration("elapsed", time.Since(start)))

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("path", path))
	}
	return nil
}

// ask prints a prompt and reads one trimmed line.
func ask(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprintln(w, prompt)
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func writeOutput(path string, data []float32, order binary.ByteOrder) error {
	if path == "-" {
		w := bufio.NewWriter(os.Stdout)
		if err := vbo.WriteBuffer(w, data, order); err != nil {
			return err
		}
		return w.Flush()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := vbo.WriteBuffer(w, data, order); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func logFailure(err error) {
	var le *vbo.LineError
	if errors.As(err, &le) {
		logger.Error("conversion failed",
			zap.Int("line", le.Line),
			zap.Stringer("kind", le.Kind),
			zap.String("token", le.Token),
			zap.Error(le.Err))
		return
	}
	logger.Error("conversion failed", zap.Error(err))
}

func printFields(w io.Writer) {
	fmt.Fprintln(w, "Field order tokens:")
	for _, f := range vbo.Fields {
		kind := f.Kind().String()
		if f == vbo.Void {
			kind = "padding (0.0); any unknown token"
		}
		fmt.Fprintf(w, "  %-3s %s\n", f, kind)
	}
}
