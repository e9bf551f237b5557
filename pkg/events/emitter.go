// Package events handles event emission for mapping run lifecycle
package events

import (
	"context"
	"encoding/json"

	"github.com/Gobusters/ectologger"

	"github.com/formsiq/fieldmap/pkg/kafka"
	"github.com/formsiq/fieldmap/pkg/models"
	"github.com/formsiq/fieldmap/pkg/tracing"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// Emitter handles event emission for mapping runs
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitMappingCompleted emits a mapping.completed event for a finished run
func (e *Emitter) EmitMappingCompleted(ctx context.Context, run *models.MappingRun, report models.MappingReport) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitMappingCompleted")
	defer span.End()

	reportJSON, _ := json.Marshal(map[string]any{
		"schema_version":    SchemaVersion,
		"matches":           report.Matches,
		"skipped_sources":   report.SkippedSources,
		"unmatched_sources": report.UnmatchedSources,
	})

	event := &kafka.MappingEvent{
		EventType:     "mapping.completed",
		TenantID:      run.TenantID,
		RunID:         run.ID,
		TemplateID:    run.TemplateID,
		TotalFields:   run.TotalFields,
		MappedFields:  run.MappedFields,
		SkippedFields: run.SkippedFields,
		Report:        reportJSON,
	}

	if err := e.producer.PublishMappingEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit mapping.completed event")
		return err
	}

	return nil
}
