// Command loader ingests every match document found in a data directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mkalvans/football-stats/internal/app"
	"github.com/mkalvans/football-stats/internal/config"
	"github.com/mkalvans/football-stats/internal/feed"
	"github.com/mkalvans/football-stats/internal/platform/logging"
	"github.com/mkalvans/football-stats/internal/usecase"
)

func main() {
	var (
		dirFlag     = flag.String("dir", "", "directory with match documents (overrides APP_DATA_DIR)")
		abortOnFail = flag.Bool("abort-on-error", false, "stop at the first document that fails to ingest")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	dir := strings.TrimSpace(*dirFlag)
	if dir == "" {
		dir = cfg.DataDir
	}
	if dir == "" {
		logger.Error("no data directory configured")
		os.Exit(2)
	}

	components, err := app.NewComponents(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer func() { _ = components.Close() }()

	files, err := listDocuments(dir)
	if err != nil {
		logger.Error("list documents", "dir", dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Warn("no match documents found", "dir", dir)
		return
	}

	ctx := context.Background()
	var ingested, skipped, failed int
	for _, path := range files {
		result, err := loadDocument(ctx, components.Ingest, path)
		if err != nil {
			failed++
			logger.Error("ingest document failed", "file", path, "error", err)
			if *abortOnFail {
				os.Exit(1)
			}
			continue
		}
		if result.Skipped {
			skipped++
			continue
		}
		ingested++
		logger.Info("document ingested", "file", path, "match_id", result.MatchID)
	}

	logger.Info("load finished",
		"dir", dir,
		"files", len(files),
		"ingested", ingested,
		"skipped", skipped,
		"failed", failed,
	)
	if failed > 0 {
		os.Exit(1)
	}
}

// listDocuments returns the *.json files directly under dir in name order.
// Name order keeps reruns deterministic.
func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)

	return files, nil
}

func loadDocument(ctx context.Context, ingest *usecase.IngestService, path string) (usecase.IngestResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return usecase.IngestResult{}, fmt.Errorf("read file: %w", err)
	}

	doc, err := feed.Parse(data)
	if err != nil {
		return usecase.IngestResult{}, err
	}

	return ingest.IngestDocument(ctx, doc)
}
