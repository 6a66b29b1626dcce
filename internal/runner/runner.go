// Package runner orchestrates crawl runs: one concurrent task per store,
// each consuming its adapter's record sequence and handing the complete set
// to the catalog writer.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/ephellon/gamecatalog/internal/adapters"
	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/datastore"
	"github.com/ephellon/gamecatalog/internal/writer"
)

// RunAdapter drives one adapter end-to-end: consume the full record
// sequence into memory, then persist it. An empty record set is a valid
// outcome, not an error.
func RunAdapter(ctx context.Context, a adapters.Adapter, outDir string) error {
	runID := uuid.NewString()[:8]
	log := slog.With("store", a.Store(), "run", runID)
	log.Info("Starting crawl", "pagination", a.Capabilities().Pagination)

	var records []catalog.Record
	if err := a.IterGames(ctx, func(r catalog.Record) {
		records = append(records, r)
	}); err != nil {
		// Partial buffers are discarded, never partially written.
		return fmt.Errorf("crawl aborted for %s: %w", a.Store(), err)
	}

	clusters := catalog.Cluster(records)
	log.Info("Crawl complete", "records", len(records), "titles", len(clusters))

	if err := writer.WriteCatalog(outDir, a.Store(), records); err != nil {
		return err
	}

	if viper.GetBool("database.enabled") {
		if err := persist(log, records); err != nil {
			return err
		}
	}
	return nil
}

// persist writes the record set to the configured data store.
func persist(log *slog.Logger, records []catalog.Record) error {
	var store datastore.Store
	mode := viper.GetString("database.mode")
	switch mode {
	case "local", "":
		store = datastore.NewSQLiteStore(viper.GetString("database.dbfile"))
	case "remote":
		store = datastore.NewRemoteClient(
			viper.GetString("database.remote_url"),
			viper.GetString("database.api_token"),
		)
	default:
		return fmt.Errorf("invalid database mode: %s", mode)
	}

	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to data store: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(datastore.GamesSchema); err != nil {
		return err
	}

	rows := make([]map[string]any, len(records))
	for i, r := range records {
		rows[i] = datastore.RecordToMap(r)
	}
	if err := store.BatchInsert(datastore.GamesTable, rows); err != nil {
		return err
	}
	log.Info("Persisted records", "count", len(rows), "mode", mode)
	return nil
}

// RunAll crawls every adapter as an independent concurrent task. A failure
// in one store's task never cancels its siblings; all failures are joined
// into the returned error.
func RunAll(ctx context.Context, list []adapters.Adapter, outDir string) error {
	var wg sync.WaitGroup
	errs := make([]error, len(list))

	for i, a := range list {
		wg.Add(1)
		go func(i int, a adapters.Adapter) {
			defer wg.Done()
			if err := RunAdapter(ctx, a, outDir); err != nil {
				slog.Error("Store crawl failed", "store", a.Store(), "error", err)
				errs[i] = err
			}
		}(i, a)
	}

	wg.Wait()
	return errors.Join(errs...)
}
