package mappingtable

import (
	"context"
	"encoding/json"
	"os"

	"github.com/Gobusters/ectologger"

	"github.com/formsiq/fieldmap/pkg/tracing"
)

// Reconciler merges the authoritative in-code mapping with the
// on-disk cache of mappings learned from earlier runs
type Reconciler struct {
	logger ectologger.Logger
	path   string
}

// NewReconciler creates a reconciler for the cache file at path. An
// empty path disables the cache entirely.
func NewReconciler(logger ectologger.Logger, path string) *Reconciler {
	return &Reconciler{
		logger: logger,
		path:   path,
	}
}

// Reconcile merges authoritative entries with the cached ones and
// writes the merged table back. Authoritative entries win conflicts;
// cache-only entries survive. A missing or corrupt cache is treated
// as empty, and a failed write-back is logged but does not fail the
// run. Reconcile is idempotent: a second pass over its own output
// changes nothing.
func (r *Reconciler) Reconcile(ctx context.Context, authoritative map[string]string) map[string]string {
	ctx, span := tracing.StartSpan(ctx, "mappingtable.Reconciler.Reconcile")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method": "Reconcile",
		"path":   r.path,
	})

	merged := make(map[string]string, len(authoritative))
	cached := r.loadCache(ctx)
	for name, key := range cached {
		merged[name] = key
	}
	for name, key := range authoritative {
		merged[name] = key
	}

	if r.path != "" {
		if err := r.writeCache(merged); err != nil {
			log.WithError(err).Warn("Failed to write mapping cache, continuing with merged table")
		}
	}

	log.WithFields(map[string]any{
		"authoritative": len(authoritative),
		"cached":        len(cached),
		"merged":        len(merged),
	}).Debug("Reconciled mapping table")

	return merged
}

func (r *Reconciler) loadCache(ctx context.Context) map[string]string {
	if r.path == "" {
		return nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.WithContext(ctx).WithError(err).Warn("Failed to read mapping cache, treating as empty")
		}
		return nil
	}

	var cached map[string]string
	if err := json.Unmarshal(data, &cached); err != nil {
		r.logger.WithContext(ctx).WithError(err).Warn("Mapping cache is corrupt, treating as empty")
		return nil
	}

	return cached
}

// writeCache persists the merged table. Keys serialize in sorted
// order, so repeated reconciles produce byte-identical files.
func (r *Reconciler) writeCache(merged map[string]string) error {
	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, append(data, '\n'), 0o644)
}
