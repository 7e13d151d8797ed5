package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pardivkamishetty/outliner/internal/config"
	"github.com/pardivkamishetty/outliner/internal/parser"
	"github.com/pardivkamishetty/outliner/internal/schema"
	"github.com/pardivkamishetty/outliner/internal/sink"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		log.Error("input directory unavailable", "dir", cfg.InputDir, "error", err)
		os.Exit(1)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !parser.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		log.Info("no supported documents found", "dir", cfg.InputDir)
		return
	}

	out, err := sink.NewDirectorySink(cfg.OutputDir)
	if err != nil {
		log.Error("output directory unavailable", "dir", cfg.OutputDir, "error", err)
		os.Exit(1)
	}

	validator := &schema.Contract{}
	opts := parser.Options{
		Proximity:  cfg.CharProximity,
		SampleRuns: cfg.ScriptSampleRuns,
	}
	ctx := context.Background()
	start := time.Now()

	var mu sync.Mutex
	processed, failed := 0, 0

	queue := make(chan string)
	var wg sync.WaitGroup
	for range cfg.WorkerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range queue {
				if processFile(ctx, log, cfg.InputDir, name, opts, validator, out) {
					mu.Lock()
					processed++
					mu.Unlock()
				} else {
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}
		}()
	}
	for _, name := range files {
		queue <- name
	}
	close(queue)
	wg.Wait()

	log.Info("batch complete",
		"processed", processed,
		"failed", failed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if failed > 0 && processed == 0 {
		os.Exit(1)
	}
}

// processFile extracts one document and writes its outline. A failure
// is logged but never aborts the rest of the batch.
func processFile(ctx context.Context, log *slog.Logger, dir, name string, opts parser.Options, validator schema.Validator, out sink.Sink) bool {
	src, err := parser.ForFileTuned(name, opts)
	if err != nil {
		log.Warn("unsupported format", "filename", name, "error", err)
		return false
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		log.Error("read failed", "filename", name, "error", err)
		return false
	}

	doc, err := src.Extract(bytes.NewReader(data), name)
	if err != nil {
		log.Error("extraction failed", "filename", name, "error", err)
		return false
	}
	if err := validator.Validate(doc); err != nil {
		log.Error("validation failed", "filename", name, "error", err)
		return false
	}
	if err := out.Write(ctx, parser.Stem(name), doc); err != nil {
		log.Error("write failed", "filename", name, "error", err)
		return false
	}

	log.Info("extracted", "filename", name, "title", doc.Title, "headings", len(doc.Outline))
	return true
}
