package acroform

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Gobusters/ectologger"

	"github.com/formsiq/fieldmap/pkg/models"
	"github.com/formsiq/fieldmap/pkg/tracing"
)

// Loader reads template field dictionaries from disk and caches the
// introspected schema per template path
type Loader struct {
	logger  ectologger.Logger
	schemas sync.Map // path -> *schemaEntry
}

type schemaEntry struct {
	once   sync.Once
	schema map[string]models.SchemaField
	err    error
}

// NewLoader creates a new schema loader
func NewLoader(logger ectologger.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load returns the introspected schema for the template at path,
// reading and parsing it at most once
func (l *Loader) Load(ctx context.Context, path string) (map[string]models.SchemaField, error) {
	ctx, span := tracing.StartSpan(ctx, "acroform.Loader.Load")
	defer span.End()

	value, _ := l.schemas.LoadOrStore(path, &schemaEntry{})
	entry := value.(*schemaEntry)

	entry.once.Do(func() {
		entry.schema, entry.err = l.load(ctx, path)
	})

	return entry.schema, entry.err
}

func (l *Loader) load(ctx context.Context, path string) (map[string]models.SchemaField, error) {
	log := l.logger.WithContext(ctx).WithFields(map[string]any{
		"method": "load",
		"path":   path,
	})

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Error("Failed to read template field dictionary")
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}

	var fields map[string]models.RawField
	if err := json.Unmarshal(data, &fields); err != nil {
		log.WithError(err).Error("Failed to parse template field dictionary")
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}

	schema, err := Introspect(fields)
	if err != nil {
		log.WithError(err).Error("Failed to introspect template schema")
		return nil, err
	}

	log.WithFields(map[string]any{"field_count": len(schema)}).Info("Loaded template schema")
	return schema, nil
}
