// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paper-digest/internal/httputil"
	"github.com/pdiddy/paper-digest/pkg/types"
)

// DefaultSourceURL is the raw README of the ML Papers of the Week digest.
const DefaultSourceURL = "https://raw.githubusercontent.com/dair-ai/ML-Papers-of-the-Week/main/README.md"

// DefaultStartMarker opens the content window of the digest.
const DefaultStartMarker = "## Top ML Papers "

var (
	ErrStartMarkerNotFound = errors.New("start marker not found")
	ErrEndMarkerNotFound   = errors.New("no horizontal rule after start marker")
	ErrNoPapers            = errors.New("no papers found")
)

// Trim keeps the lines from the first one starting with startMarker up to,
// but excluding, the last line that is a bare "---" rule.
func Trim(text, startMarker string) (string, error) {
	lines := strings.SplitAfter(text, "\n")

	start := -1
	for i, line := range lines {
		if strings.HasPrefix(line, startMarker) {
			start = i
			break
		}
	}
	if start < 0 {
		return "", fmt.Errorf("%w: %q", ErrStartMarkerNotFound, startMarker)
	}

	end := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			end = i
		}
	}
	if end <= start {
		return "", ErrEndMarkerNotFound
	}
	return strings.Join(lines[start:end], ""), nil
}

// Download fetches the digest, trims it to its content window, and writes
// the result to cfg.OutputPath. It returns the trimmed text.
func Download(ctx context.Context, client *http.Client, cfg types.DownloadConfig, w io.Writer, logger *slog.Logger) (string, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logger.Info("downloading digest", "url", cfg.SourceURL)
	body, err := httputil.Get(ctx, client, cfg.SourceURL, httputil.Options{
		UserAgent: cfg.UserAgent,
		Accept:    "text/markdown, text/plain",
	})
	if err != nil {
		return "", fmt.Errorf("downloading digest: %w", err)
	}

	trimmed, err := Trim(string(body), cfg.StartMarker)
	if err != nil {
		return "", fmt.Errorf("trimming digest: %w", err)
	}

	if err := WriteFile(cfg.OutputPath, []byte(trimmed)); err != nil {
		return "", err
	}
	fmt.Fprintf(w, "downloaded: %s (%d bytes)\n", cfg.OutputPath, len(trimmed))
	return trimmed, nil
}

// WriteFile writes data to path through a temporary file in the same
// directory, renaming it into place on success.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".paper-digest-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ReadRecords reads a digest markdown file and parses it. A file that
// yields no records is reported as ErrNoPapers.
func ReadRecords(path string, logger *slog.Logger) ([]types.PaperRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading digest: %w", err)
	}
	records := ParseWithLogger(string(data), logger)
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPapers)
	}
	logger.Info("parsed digest", "path", path, "records", len(records))
	return records, nil
}
