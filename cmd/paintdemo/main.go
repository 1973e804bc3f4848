// Command paintdemo replays an editing script headless and writes the
// result as PNG.
//
// Settings come from the environment (PAINTDEMO_OUTPUT,
// PAINTDEMO_LOG_LEVEL, PAINTDEMO_HISTORY) and can be overridden by flags.
package main

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/script"
)

//go:embed demo.yaml
var demoScript []byte

// Config is read from PAINTDEMO_* variables.
type Config struct {
	Output   string        `envconfig:"OUTPUT" default:"paint.png"`
	LogLevel slog.Level    `envconfig:"LOG_LEVEL" default:"warn"`
	History  string        `envconfig:"HISTORY"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("paintdemo", &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	var (
		scriptPath = flag.String("script", "", "session script (YAML); the built-in demo when empty")
		output     = flag.String("output", cfg.Output, "output file")
		history    = flag.String("history", cfg.History, "write the command history as JSON lines to this file")
	)
	flag.Parse()

	paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	src := demoScript
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
		src = data
	}
	s, err := script.Parse(bytes.NewReader(src))
	if err != nil {
		log.Fatalf("Failed to parse script: %v", err)
	}
	ed, err := s.Editor()
	if err != nil {
		log.Fatalf("Failed to create editor: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := s.Run(ctx, ed); err != nil {
		log.Fatalf("Failed to run script: %v", err)
	}

	if err := writePNG(*output, ed); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if *history != "" {
		if err := writeHistory(*history, ed.History().Commands()); err != nil {
			log.Fatalf("Failed to write history: %v", err)
		}
	}

	b := ed.Bounds()
	log.Printf("Drawing saved to %s (%dx%d, %d commands)\n", *output, b.Dx(), b.Dy(), ed.History().Len())
}

func writePNG(path string, ed *paint.Editor) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ed.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeHistory(path string, cmds []paint.Command) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, cmd := range cmds {
		line, err := paint.MarshalCommand(cmd)
		if err != nil {
			_ = f.Close()
			return err
		}
		_, _ = w.Write(line)
		_ = w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
