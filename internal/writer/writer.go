// Package writer persists one store's crawled record set as the per-letter
// catalog files.
package writer

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/fileutil"
)

// WriteCatalog partitions records by the letter bucket of their title and
// writes each non-empty bucket as a JSON array of output items to
// <outDir>/<store>/<bucket>.json. Record-arrival order is preserved within
// a bucket.
func WriteCatalog(outDir string, store catalog.Store, records []catalog.Record) error {
	buckets := make(map[string][]catalog.OutputItem)
	for _, r := range records {
		b := catalog.LetterBucket(r.Name)
		buckets[b] = append(buckets[b], r.OutputItem())
	}

	storeDir := filepath.Join(outDir, string(store))
	for bucket, items := range buckets {
		path := filepath.Join(storeDir, bucket+".json")
		if _, err := fileutil.WriteJSONFile(items, path, true); err != nil {
			return fmt.Errorf("failed to write bucket %s: %w", bucket, err)
		}
	}

	slog.Info("Wrote catalog", "store", store, "records", len(records), "buckets", len(buckets))
	return nil
}
